package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Family role assignment and forms of address.

type SetRoleCommand struct{}

func (c *SetRoleCommand) Name() string        { return "setrole" }
func (c *SetRoleCommand) Description() string { return "Assign a family role to a member." }
func (c *SetRoleCommand) Category() string    { return "🏠 Household" }
func (c *SetRoleCommand) RequireHead() bool   { return true }

func (c *SetRoleCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "role",
				Description: "Family role name (mom, dad, kid...)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Who holds it",
				Required:    true,
			},
		},
	}
}

func (c *SetRoleCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	opts := slash.Event.ApplicationCommandData().Options
	roleName := optString(opts, "role")
	user := optUser(slash.Session, opts, "user")
	if user == nil {
		respond(slash.Session, slash.Event, "That user is not in this server.")
		return nil
	}
	slash.Storage.SetFamilyRole(slash.Event.GuildID, roleName, user.ID)
	respond(slash.Session, slash.Event, fmt.Sprintf("Role %s set for %s.", roleName, displayName(slash.Session, slash.Event.GuildID, user)))
	return nil
}

type RolesCommand struct{}

func (c *RolesCommand) Name() string        { return "roles" }
func (c *RolesCommand) Description() string { return "List family roles." }
func (c *RolesCommand) Category() string    { return "🏠 Household" }
func (c *RolesCommand) RequireHead() bool   { return false }

func (c *RolesCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *RolesCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	roles := slash.Storage.FamilyRoles(slash.Event.GuildID)
	if len(roles) == 0 {
		respond(slash.Session, slash.Event, "No roles set yet.")
		return nil
	}
	names := make([]string, 0, len(roles))
	for name := range roles {
		names = append(names, name)
	}
	sort.Strings(names)
	var lines []string
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s: <@%s>", name, roles[name]))
	}
	respond(slash.Session, slash.Event, strings.Join(lines, "\n"))
	return nil
}

type AddressCommand struct{}

func (c *AddressCommand) Name() string        { return "address" }
func (c *AddressCommand) Description() string { return "Set how the maid addresses a member." }
func (c *AddressCommand) Category() string    { return "🏠 Household" }
func (c *AddressCommand) RequireHead() bool   { return false }

func (c *AddressCommand) SlashDefinition() *discordgo.ApplicationCommand {
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
				Name:        "title",
				Description: "Form of address (Miss, Young Master...)",
				Required:    true,
			},
		},
	}
}

func (c *AddressCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	opts := slash.Event.ApplicationCommandData().Options
	user := optUser(slash.Session, opts, "user")
	title := optString(opts, "title")
	if user == nil {
		respond(slash.Session, slash.Event, "That user is not in this server.")
		return nil
	}
	slash.Storage.SetAddress(slash.Event.GuildID, user.ID, title)
	respond(slash.Session, slash.Event, fmt.Sprintf("Address set for %s.", displayName(slash.Session, slash.Event.GuildID, user)))
	return nil
}

type WhoamiCommand struct{}

func (c *WhoamiCommand) Name() string        { return "whoami" }
func (c *WhoamiCommand) Description() string { return "Ask how the maid addresses you." }
func (c *WhoamiCommand) Category() string    { return "🏠 Household" }
func (c *WhoamiCommand) RequireHead() bool   { return false }

func (c *WhoamiCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *WhoamiCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	user := slash.Event.Member.User
	title := displayFor(slash, user.ID, displayName(slash.Session, slash.Event.GuildID, user))
	respond(slash.Session, slash.Event, "You are addressed as: "+title)
	return nil
}

func init() {
	Register(WithGuildOnly(WithHeadOnly(&SetRoleCommand{})))
	Register(WithGuildOnly(&RolesCommand{}))
	Register(WithGuildOnly(&AddressCommand{}))
	Register(WithGuildOnly(&WhoamiCommand{}))
}
