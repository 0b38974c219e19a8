package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// SLCommand keeps the household's Second Life home location.
type SLCommand struct{}

func (c *SLCommand) Name() string        { return "sl" }
func (c *SLCommand) Description() string { return "Second Life helpers." }
func (c *SLCommand) Category() string    { return "🏠 Household" }
func (c *SLCommand) RequireHead() bool   { return false }

func (c *SLCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "sethome",
				Description: "Set the SL home location.",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "url",
						Description: "SLurl or landmark",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "home",
				Description: "Show the SL home location.",
			},
		},
	}
}

func (c *SLCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	top := slash.Event.ApplicationCommandData().Options[0]
	switch top.Name {
	case "sethome":
		slash.Storage.SetHome(slash.Event.GuildID, optString(top.Options, "url"))
		respond(slash.Session, slash.Event, "SL home set.")
	case "home":
		home := slash.Storage.Home(slash.Event.GuildID)
		if home == "" {
			home = "No SL home set yet."
		}
		respond(slash.Session, slash.Event, home)
	}
	return nil
}

func init() {
	Register(WithGuildOnly(&SLCommand{}))
}
