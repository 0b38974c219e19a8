package command

import "github.com/bwmarrin/discordgo"

type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	wrap func(ctx interface{}) error
}

func (w *wrappedCommand) Run(ctx interface{}) error {
	return w.wrap(ctx)
}

// SlashDefinition passes through the wrapper so registration still sees the
// inner command's definition.
func (w *wrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

func WithGuildOnly(cmd Command) Command {
	return &wrappedCommand{
		Command: cmd,
		wrap: func(ctx interface{}) error {
			if v, ok := ctx.(*SlashContext); ok && v.Event.GuildID == "" {
				respondEphemeral(v.Session, v.Event, "This command can only be used in servers.")
				return nil
			}
			return cmd.Run(ctx)
		},
	}
}

func WithHeadOnly(cmd Command) Command {
	return &wrappedCommand{
		Command: cmd,
		wrap: func(ctx interface{}) error {
			if v, ok := ctx.(*SlashContext); ok {
				if !isHeadOfHousehold(v.Session, v.Config, v.Event.GuildID, v.Event.Member) {
					respondEphemeral(v.Session, v.Event, "👑 Only the Head of Household may issue this command.")
					return nil
				}
			}
			return cmd.Run(ctx)
		},
	}
}
