package command

import (
	"fmt"
	"math/rand"

	"house-maid/internal/responses"

	"github.com/bwmarrin/discordgo"
)

// SimpleCommand replies with a personality-mode line wrapped in an embed.
// A few commands carry extra options or an address prefix; everything else
// is a straight table lookup.
type SimpleCommand struct {
	name        string
	description string
}

func (c *SimpleCommand) Name() string        { return c.name }
func (c *SimpleCommand) Description() string { return c.description }
func (c *SimpleCommand) Category() string    { return "🏠 Household" }
func (c *SimpleCommand) RequireHead() bool   { return false }

func (c *SimpleCommand) SlashDefinition() *discordgo.ApplicationCommand {
	def := &discordgo.ApplicationCommand{
		Name:        c.name,
		Description: c.description,
		Type:        discordgo.ChatApplicationCommand,
	}
	switch c.name {
	case "help":
		def.Options = []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "context",
				Description: "What you need help with",
			},
		}
	case "study":
		def.Options = []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "roll",
				Description: "Roll for effort",
			},
		}
	}
	return def
}

func (c *SimpleCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	gid := slash.Event.GuildID
	opts := slash.Event.ApplicationCommandData().Options
	mode := slash.Storage.Mode(gid)

	reply := responses.Pick(c.name, mode)
	switch c.name {
	case "help":
		if context := optString(opts, "context"); context != "" {
			reply = fmt.Sprintf("%s (%s)", responses.Pick("help", mode), context)
		}
	case "study":
		if roll, _ := optBool(opts, "roll"); roll {
			reply = fmt.Sprintf("Effort: %d/20. Acceptable.", 1+rand.Intn(20))
		}
	}

	switch c.name {
	case "homework", "study", "bedtime":
		user := slash.Event.Member.User
		address := displayFor(slash, user.ID, displayName(slash.Session, gid, user))
		reply = address + ", " + reply
	}

	color := 0
	if slash.Storage.NightMode(gid) {
		reply = responses.Soften(reply)
		color = responses.ColorNight
	}

	respondEmbed(slash.Session, slash.Event, responses.MaidEmbed(responses.Title(c.name), reply, color))
	return nil
}

func init() {
	// "comfort" has its own targeted command, so its table entry is not
	// registered here.
	simple := []struct{ name, description string }{
		{"dinner", "Ask about dinner."},
		{"rules", "Ask about the rules."},
		{"menu", "Ask about the menu."},
		{"cook", "Ask what the maid is doing."},
		{"snack", "Ask for a snack."},
		{"laundry", "Ask about laundry."},
		{"fold", "Ask about folding laundry."},
		{"chores", "Ask about chores."},
		{"bedtime", "Ask about bedtime."},
		{"wake", "Ask about wake-up."},
		{"routine", "Ask about the routine."},
		{"hug", "Ask for a hug."},
		{"badday", "Mention a bad day."},
		{"house", "Ask about the house."},
		{"weather", "Ask about the weather."},
		{"homework", "Ask about homework time."},
		{"study", "Ask about study time."},
		{"help", "Ask for help."},
		{"clean", "Ask about cleaning."},
	}
	for _, item := range simple {
		Register(WithGuildOnly(&SimpleCommand{name: item.name, description: item.description}))
	}
}
