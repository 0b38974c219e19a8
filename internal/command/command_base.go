package command

import (
	"house-maid/internal/config"
	"house-maid/internal/storage"

	"github.com/bwmarrin/discordgo"
	"github.com/jmhodges/clock"
)

type Command interface {
	Name() string
	Description() string
	Category() string
	RequireHead() bool
	Run(ctx interface{}) error
}

type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

type SlashContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Storage *storage.Storage
	Config  *config.Config
	Clock   clock.Clock
}
