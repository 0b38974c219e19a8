package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type SetAnnounceCommand struct{}

func (c *SetAnnounceCommand) Name() string        { return "setannounce" }
func (c *SetAnnounceCommand) Description() string { return "Set the announcement channel." }
func (c *SetAnnounceCommand) Category() string    { return "⚙️ Settings" }
func (c *SetAnnounceCommand) RequireHead() bool   { return false }

func (c *SetAnnounceCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "channel",
				Description: "Where announcements go",
				Required:    true,
			},
		},
	}
}

func (c *SetAnnounceCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	channel := optChannel(slash.Session, slash.Event.ApplicationCommandData().Options, "channel")
	if channel == nil {
		respondEphemeral(slash.Session, slash.Event, "Pick a channel, dear.")
		return nil
	}
	slash.Storage.SetAnnounceChannel(slash.Event.GuildID, channel.ID)
	respond(slash.Session, slash.Event, fmt.Sprintf("Announcement channel set to <#%s>.", channel.ID))
	return nil
}

func init() {
	Register(WithGuildOnly(&SetAnnounceCommand{}))
}
