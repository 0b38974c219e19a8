package command

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"house-maid/internal/responses"

	"github.com/bwmarrin/discordgo"
)

// Parlor games: dice, truth/dare, icebreakers and fortunes.

var diceRe = regexp.MustCompile(`(?i)^(\d+)d(\d+)$`)

type RollCommand struct{}

func (c *RollCommand) Name() string        { return "roll" }
func (c *RollCommand) Description() string { return "Roll dice, NdM style." }
func (c *RollCommand) Category() string    { return "🎲 Games" }
func (c *RollCommand) RequireHead() bool   { return false }

func (c *RollCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "dice",
				Description: "Like 1d20 or 3d6 (default 1d20)",
			},
		},
	}
}

func (c *RollCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	input := optString(slash.Event.ApplicationCommandData().Options, "dice")
	if input == "" {
		input = "1d20"
	}
	m := diceRe.FindStringSubmatch(input)
	if m == nil {
		respond(slash.Session, slash.Event, "Provide dice in NdM format, like 1d20.")
		return nil
	}
	count, _ := strconv.Atoi(m[1])
	sides, _ := strconv.Atoi(m[2])
	if count > 10 {
		count = 10
	}
	if sides > 1000 {
		sides = 1000
	}
	if count < 1 || sides < 1 {
		respond(slash.Session, slash.Event, "Provide dice in NdM format, like 1d20.")
		return nil
	}
	rolls := make([]string, count)
	total := 0
	for i := range rolls {
		v := 1 + rand.Intn(sides)
		total += v
		rolls[i] = strconv.Itoa(v)
	}
	respond(slash.Session, slash.Event, fmt.Sprintf("🎲 Rolls: %s (Total %d)", strings.Join(rolls, ", "), total))
	return nil
}

// PromptCommand serves truth or dare prompts, with an optional spicy pool.
type PromptCommand struct {
	name        string
	description string
	normal      []string
	spicy       []string
}

func (c *PromptCommand) Name() string        { return c.name }
func (c *PromptCommand) Description() string { return c.description }
func (c *PromptCommand) Category() string    { return "🎲 Games" }
func (c *PromptCommand) RequireHead() bool   { return false }

func (c *PromptCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "spicy",
				Description: "Spicier prompts",
			},
		},
	}
}

func (c *PromptCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	pool := c.normal
	if spicy, _ := optBool(slash.Event.ApplicationCommandData().Options, "spicy"); spicy {
		pool = c.spicy
	}
	respond(slash.Session, slash.Event, responses.Choose(pool))
	return nil
}

// OneLinerCommand replies with a random line from a fixed pool.
type OneLinerCommand struct {
	name        string
	description string
	pool        []string
}

func (c *OneLinerCommand) Name() string        { return c.name }
func (c *OneLinerCommand) Description() string { return c.description }
func (c *OneLinerCommand) Category() string    { return "🎲 Games" }
func (c *OneLinerCommand) RequireHead() bool   { return false }

func (c *OneLinerCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *OneLinerCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	respond(slash.Session, slash.Event, responses.Choose(c.pool))
	return nil
}

func init() {
	Register(WithGuildOnly(&RollCommand{}))
	Register(WithGuildOnly(&PromptCommand{
		name:        "truth",
		description: "Get a truth prompt.",
		normal:      responses.Truths,
		spicy:       responses.TruthsSpicy,
	}))
	Register(WithGuildOnly(&PromptCommand{
		name:        "dare",
		description: "Get a dare prompt.",
		normal:      responses.Dares,
		spicy:       responses.DaresSpicy,
	}))
	Register(WithGuildOnly(&OneLinerCommand{
		name:        "icebreaker",
		description: "Get an icebreaker question.",
		pool:        responses.Icebreakers,
	}))
	Register(WithGuildOnly(&OneLinerCommand{
		name:        "fortune",
		description: "Receive a fortune.",
		pool:        responses.Fortunes,
	}))
}
