package command

import (
	"fmt"

	"house-maid/internal/schedule"

	"github.com/bwmarrin/discordgo"
)

type SetCurfewCommand struct{}

func (c *SetCurfewCommand) Name() string        { return "setcurfew" }
func (c *SetCurfewCommand) Description() string { return "Set the household curfew." }
func (c *SetCurfewCommand) Category() string    { return "⚙️ Settings" }
func (c *SetCurfewCommand) RequireHead() bool   { return true }

func (c *SetCurfewCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "time",
				Description: "Curfew time, HH:MM (24h)",
				Required:    true,
			},
		},
	}
}

func (c *SetCurfewCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	input := optString(slash.Event.ApplicationCommandData().Options, "time")
	if _, err := schedule.ParseTimeOfDay(input); err != nil {
		respond(slash.Session, slash.Event, "Provide time as HH:MM (24h).")
		return nil
	}
	slash.Storage.SetCurfew(slash.Event.GuildID, input)
	respond(slash.Session, slash.Event, fmt.Sprintf("Curfew set to %s.", input))
	return nil
}

type CurfewCommand struct{}

func (c *CurfewCommand) Name() string        { return "curfew" }
func (c *CurfewCommand) Description() string { return "Ask about the curfew." }
func (c *CurfewCommand) Category() string    { return "🏠 Household" }
func (c *CurfewCommand) RequireHead() bool   { return false }

func (c *CurfewCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *CurfewCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	respond(slash.Session, slash.Event, fmt.Sprintf("Curfew is %s.", slash.Storage.Curfew(slash.Event.GuildID)))
	return nil
}

func init() {
	Register(WithGuildOnly(WithHeadOnly(&SetCurfewCommand{})))
	Register(WithGuildOnly(&CurfewCommand{}))
}
