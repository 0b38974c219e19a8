package command

import (
	"errors"
	"fmt"

	"house-maid/internal/responses"
	"house-maid/internal/schedule"
	"house-maid/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// The favor economy: rewards, grounding, standings and the daily check-in.

func userOption() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member",
			Required:    true,
		},
	}
}

type RewardCommand struct{}

func (c *RewardCommand) Name() string        { return "reward" }
func (c *RewardCommand) Description() string { return "Reward a member with favor points." }
func (c *RewardCommand) Category() string    { return "📊 Favor" }
func (c *RewardCommand) RequireHead() bool   { return true }

func (c *RewardCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options:     userOption(),
	}
}

func (c *RewardCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	user := optUser(slash.Session, slash.Event.ApplicationCommandData().Options, "user")
	if user == nil {
		respond(slash.Session, slash.Event, "That user is not in this server.")
		return nil
	}
	total := slash.Storage.AdjustFavor(slash.Event.GuildID, user.ID, 5)
	name := displayName(slash.Session, slash.Event.GuildID, user)
	respondEmbed(slash.Session, slash.Event, responses.MaidEmbed(
		"🍪 Good Behavior Acknowledged",
		fmt.Sprintf("%s has been rewarded 5 favor points.\nCurrent favor: %d", name, total),
		0,
	))
	return nil
}

type GroundCommand struct{}

func (c *GroundCommand) Name() string        { return "ground" }
func (c *GroundCommand) Description() string { return "Dock a member's favor points." }
func (c *GroundCommand) Category() string    { return "📊 Favor" }
func (c *GroundCommand) RequireHead() bool   { return true }

func (c *GroundCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options:     userOption(),
	}
}

func (c *GroundCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	user := optUser(slash.Session, slash.Event.ApplicationCommandData().Options, "user")
	if user == nil {
		respond(slash.Session, slash.Event, "That user is not in this server.")
		return nil
	}
	total := slash.Storage.AdjustFavor(slash.Event.GuildID, user.ID, -5)
	name := displayName(slash.Session, slash.Event.GuildID, user)
	respondEmbed(slash.Session, slash.Event, responses.MaidEmbed(
		"📉 Privileges Reduced",
		fmt.Sprintf("%s has lost 5 favor points.\nCurrent favor: %d", name, total),
		responses.ColorGround,
	))
	return nil
}

type FavorCommand struct{}

func (c *FavorCommand) Name() string        { return "favor" }
func (c *FavorCommand) Description() string { return "Check favor points." }
func (c *FavorCommand) Category() string    { return "📊 Favor" }
func (c *FavorCommand) RequireHead() bool   { return false }

func (c *FavorCommand) SlashDefinition() *discordgo.ApplicationCommand {
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

func (c *FavorCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	user := optUser(slash.Session, slash.Event.ApplicationCommandData().Options, "user")
	if user == nil {
		user = slash.Event.Member.User
	}
	favor := slash.Storage.Favor(slash.Event.GuildID, user.ID)
	name := displayName(slash.Session, slash.Event.GuildID, user)
	respondEmbed(slash.Session, slash.Event, responses.MaidEmbed(
		"📊 Favor Points",
		fmt.Sprintf("%s has **%d** favor points.", name, favor),
		0,
	))
	return nil
}

type HouseholdCommand struct{}

func (c *HouseholdCommand) Name() string        { return "household" }
func (c *HouseholdCommand) Description() string { return "Household status report." }
func (c *HouseholdCommand) Category() string    { return "🏠 Household" }
func (c *HouseholdCommand) RequireHead() bool   { return false }

func (c *HouseholdCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *HouseholdCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	gid := slash.Event.GuildID

	topBehaved := "None yet"
	mostChaotic := "None yet"
	top, bottom, hasTop, hasBottom := slash.Storage.FavorSummary(gid)
	if hasTop {
		topBehaved = fmt.Sprintf("<@%s> (%d favor)", top.UserID, top.Points)
	}
	if hasBottom {
		mostChaotic = fmt.Sprintf("<@%s> (%d favor)", bottom.UserID, bottom.Points)
	}

	nightMode := "Off"
	if slash.Storage.NightMode(gid) {
		nightMode = "On"
	}

	respondEmbed(slash.Session, slash.Event, responses.MaidEmbed(
		"🏠 Household Status",
		fmt.Sprintf("**🌙 Night Mode:** %s\n**🕰 Curfew:** %s\n**🧺 Active Reminders:** %d\n**📊 Top Behaved:** %s\n**😈 Most Chaotic:** %s",
			nightMode,
			slash.Storage.Curfew(gid),
			len(slash.Storage.Reminders(gid)),
			topBehaved,
			mostChaotic,
		),
		0,
	))
	return nil
}

type CheckinCommand struct{}

func (c *CheckinCommand) Name() string        { return "checkin" }
func (c *CheckinCommand) Description() string { return "Daily check-in for a favor point." }
func (c *CheckinCommand) Category() string    { return "📊 Favor" }
func (c *CheckinCommand) RequireHead() bool   { return false }

func (c *CheckinCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *CheckinCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	today := schedule.DayString(slash.Clock.Now())
	total, err := slash.Storage.CheckIn(slash.Event.GuildID, slash.Event.Member.User.ID, today)
	if errors.Is(err, storage.ErrAlreadyCheckedIn) {
		respondEphemeral(slash.Session, slash.Event, "You have already checked in today.")
		return nil
	}
	respondEmbed(slash.Session, slash.Event, responses.MaidEmbed(
		"✅ Attendance Noted",
		fmt.Sprintf("Daily check-in complete. You received 1 favor point.\nCurrent favor: %d", total),
		0,
	))
	return nil
}

func init() {
	Register(WithGuildOnly(WithHeadOnly(&RewardCommand{})))
	Register(WithGuildOnly(WithHeadOnly(&GroundCommand{})))
	Register(WithGuildOnly(&FavorCommand{}))
	Register(WithGuildOnly(&HouseholdCommand{}))
	Register(WithGuildOnly(&CheckinCommand{}))
}
