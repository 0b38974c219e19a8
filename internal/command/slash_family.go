package command

import (
	"fmt"
	"strings"

	"house-maid/internal/responses"

	"github.com/bwmarrin/discordgo"
)

// Care and moderation commands: meetings, warnings, tea, tucking in.

type FamilyMeetingCommand struct{}

func (c *FamilyMeetingCommand) Name() string        { return "familymeeting" }
func (c *FamilyMeetingCommand) Description() string { return "Call a family meeting." }
func (c *FamilyMeetingCommand) Category() string    { return "🏠 Household" }
func (c *FamilyMeetingCommand) RequireHead() bool   { return true }

func (c *FamilyMeetingCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "topic",
				Description: "What the meeting is about",
			},
		},
	}
}

func (c *FamilyMeetingCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	topic := optString(slash.Event.ApplicationCommandData().Options, "topic")
	if topic == "" {
		topic = "General household matters"
	}

	var mentions []string
	if guild := fetchGuild(slash.Session, slash.Event.GuildID); guild != nil {
		wanted := []string{slash.Config.RoleHead, slash.Config.RoleKids, slash.Config.RoleSiblings, slash.Config.RoleKin}
		for _, name := range wanted {
			for _, role := range guild.Roles {
				if strings.EqualFold(role.Name, name) {
					mentions = append(mentions, "<@&"+role.ID+">")
					break
				}
			}
		}
	}

	respondEmbedWithContent(slash.Session, slash.Event,
		strings.Join(mentions, " "),
		responses.MaidEmbed(
			"🏠 Family Meeting Called",
			fmt.Sprintf("**Topic:** %s\n\nAttendance required by all household members.", topic),
			responses.ColorMeeting,
		))
	return nil
}

type WarnMuteCommand struct{}

func (c *WarnMuteCommand) Name() string        { return "warnmute" }
func (c *WarnMuteCommand) Description() string { return "Warn a member to cool down." }
func (c *WarnMuteCommand) Category() string    { return "🏠 Household" }
func (c *WarnMuteCommand) RequireHead() bool   { return false }

func (c *WarnMuteCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Member",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "reason",
				Description: "Why",
			},
		},
	}
}

func (c *WarnMuteCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	opts := slash.Event.ApplicationCommandData().Options
	user := optUser(slash.Session, opts, "user")
	if user == nil {
		respond(slash.Session, slash.Event, "That user is not in this server.")
		return nil
	}
	reason := optString(opts, "reason")
	if reason == "" {
		reason = "Please cool down."
	}
	name := displayName(slash.Session, slash.Event.GuildID, user)
	respond(slash.Session, slash.Event, fmt.Sprintf("Temporary mute warning for %s: %s", name, reason))
	return nil
}

type TeaCommand struct{}

func (c *TeaCommand) Name() string        { return "tea" }
func (c *TeaCommand) Description() string { return "Sit down for tea." }
func (c *TeaCommand) Category() string    { return "🫖 Care" }
func (c *TeaCommand) RequireHead() bool   { return false }

func (c *TeaCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *TeaCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	message := "Sit. Drink slowly. Speak when ready."
	switch familyType(slash.Session, slash.Config, slash.Event.GuildID, slash.Event.Member) {
	case "kid":
		message = "Sit, young one. The tea is warm. Tell me what happened."
	case "head":
		message = "Tea is prepared. Rest your thoughts here."
	}
	respondEmbed(slash.Session, slash.Event, responses.MaidEmbed("🍵 Tea Time", message, 0))
	return nil
}

type TuckInCommand struct{}

func (c *TuckInCommand) Name() string        { return "tuckin" }
func (c *TuckInCommand) Description() string { return "Tuck a member in." }
func (c *TuckInCommand) Category() string    { return "🫖 Care" }
func (c *TuckInCommand) RequireHead() bool   { return false }

func (c *TuckInCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Member (defaults to you)",
			},
		},
	}
}

func (c *TuckInCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	user := optUser(slash.Session, slash.Event.ApplicationCommandData().Options, "user")
	member := slash.Event.Member
	if user != nil {
		if m, err := slash.Session.GuildMember(slash.Event.GuildID, user.ID); err == nil {
			member = m
		}
	} else {
		user = slash.Event.Member.User
	}
	name := displayName(slash.Session, slash.Event.GuildID, user)

	message := "Blanket adjusted. Sleep well."
	switch familyType(slash.Session, slash.Config, slash.Event.GuildID, member) {
	case "kid":
		message = fmt.Sprintf("Blanket adjusted for %s. Forehead kiss deployed. Sleep tight, young one.", name)
	case "head":
		message = fmt.Sprintf("Rest well, %s. The household is secure.", name)
	}
	respondEmbed(slash.Session, slash.Event, responses.MaidEmbed("🛏️ Tucked In", message, 0))
	return nil
}

type ComfortCommand struct{}

func (c *ComfortCommand) Name() string        { return "comfort" }
func (c *ComfortCommand) Description() string { return "Deliver targeted comfort." }
func (c *ComfortCommand) Category() string    { return "🫖 Care" }
func (c *ComfortCommand) RequireHead() bool   { return false }

func (c *ComfortCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Member (defaults to you)",
			},
		},
	}
}

func (c *ComfortCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	user := optUser(slash.Session, slash.Event.ApplicationCommandData().Options, "user")
	member := slash.Event.Member
	if user != nil {
		if m, err := slash.Session.GuildMember(slash.Event.GuildID, user.ID); err == nil {
			member = m
		}
	} else {
		user = slash.Event.Member.User
	}
	name := displayName(slash.Session, slash.Event.GuildID, user)

	message := "You are safe here. Breathe."
	switch familyType(slash.Session, slash.Config, slash.Event.GuildID, member) {
	case "kid":
		message = fmt.Sprintf("Gentle hug deployed for %s. It will be alright, young one.", name)
	case "sibling":
		message = fmt.Sprintf("%s, sit. You do not have to explain. Just rest.", name)
	case "head":
		message = fmt.Sprintf("%s, even the Head of Household needs rest. I will manage things.", name)
	}
	respondEmbed(slash.Session, slash.Event, responses.MaidEmbed("🧸 Comfort Delivered", message, responses.ColorComfort))
	return nil
}

type TidyCommand struct{}

func (c *TidyCommand) Name() string        { return "tidy" }
func (c *TidyCommand) Description() string { return "Ask for a house report." }
func (c *TidyCommand) Category() string    { return "🫖 Care" }
func (c *TidyCommand) RequireHead() bool   { return false }

func (c *TidyCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *TidyCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	respondEmbed(slash.Session, slash.Event, responses.MaidEmbed("🧹 House Report", responses.Choose(responses.TidyReports), 0))
	return nil
}

func init() {
	Register(WithGuildOnly(WithHeadOnly(&FamilyMeetingCommand{})))
	Register(WithGuildOnly(&WarnMuteCommand{}))
	Register(WithGuildOnly(&TeaCommand{}))
	Register(WithGuildOnly(&TuckInCommand{}))
	Register(WithGuildOnly(&ComfortCommand{}))
	Register(WithGuildOnly(&TidyCommand{}))
}
