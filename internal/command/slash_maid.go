package command

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"house-maid/internal/storagetypes"

	"github.com/bwmarrin/discordgo"
)

// MaidCommand bundles the bot's own controls: announcements, personality
// mode, night mode, the calm-help ping and the status rotation.
type MaidCommand struct{}

func (c *MaidCommand) Name() string        { return "maid" }
func (c *MaidCommand) Description() string { return "Talk to the maid directly." }
func (c *MaidCommand) Category() string    { return "⚙️ Settings" }
func (c *MaidCommand) RequireHead() bool   { return false }

func (c *MaidCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "announce",
				Description: "Make an announcement.",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "text",
						Description: "What to announce",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "mode",
				Description: "Set the maid's personality mode.",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "mode",
						Description: "Personality mode",
						Required:    true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "polite", Value: storagetypes.ModePolite},
							{Name: "sassy", Value: storagetypes.ModeSassy},
							{Name: "chaotic", Value: storagetypes.ModeChaotic},
							{Name: "tired", Value: storagetypes.ModeTired},
						},
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "nightmode",
				Description: "Toggle night mode.",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "enabled",
						Description: "On or off",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "help",
				Description: "Call for a calm adult.",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
				Name:        "status",
				Description: "Manage the status rotation.",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "add",
						Description: "Add a status line.",
						Options: []*discordgo.ApplicationCommandOption{
							{
								Type:        discordgo.ApplicationCommandOptionString,
								Name:        "text",
								Description: "Status text",
								Required:    true,
							},
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "list",
						Description: "List the status rotation.",
					},
				},
			},
		},
	}
}

var adultRoleRe = regexp.MustCompile(`(?i)(mom|dad|parent|guardian|adult)`)

func (c *MaidCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	session := slash.Session
	event := slash.Event
	top := event.ApplicationCommandData().Options[0]

	switch top.Name {
	case "status":
		sub := top.Options[0]
		switch sub.Name {
		case "add":
			slash.Storage.AddStatus(optString(sub.Options, "text"))
			respond(session, event, "Status added.")
		case "list":
			respond(session, event, "Statuses: "+strings.Join(slash.Storage.Statuses(), " | "))
		}
		return nil

	case "announce":
		text := optString(top.Options, "text")
		channelID := slash.Storage.AnnounceChannel(event.GuildID)
		if channelID == "" {
			channelID = event.ChannelID
		}
		if _, err := session.ChannelMessageSend(channelID, "📣 Maid Announcement: "+text); err != nil {
			respondEphemeral(session, event, "I could not reach the announcement channel.")
			return nil
		}
		respond(session, event, "Announcement sent.")
		return nil

	case "mode":
		if !isHeadOfHousehold(session, slash.Config, event.GuildID, event.Member) {
			respondEphemeral(session, event, "👑 Only the Head of Household may issue this command.")
			return nil
		}
		mode := optString(top.Options, "mode")
		slash.Storage.SetMode(event.GuildID, mode)
		respond(session, event, fmt.Sprintf("Mode set to %s.", mode))
		return nil

	case "nightmode":
		enabled := true
		if v, ok := optBool(top.Options, "enabled"); ok {
			enabled = v
		}
		slash.Storage.SetNightMode(event.GuildID, enabled)
		if enabled {
			respond(session, event, "Night mode enabled. Voices low.")
		} else {
			respond(session, event, "Night mode disabled.")
		}
		return nil

	case "help":
		var adults []string
		for role, userID := range slash.Storage.FamilyRoles(event.GuildID) {
			if adultRoleRe.MatchString(role) {
				adults = append(adults, "<@"+userID+">")
			}
		}
		sort.Strings(adults)
		respond(session, event, strings.TrimSpace("Calm mode engaged. "+strings.Join(adults, " ")))
		return nil
	}
	return nil
}

func init() {
	Register(WithGuildOnly(&MaidCommand{}))
}
