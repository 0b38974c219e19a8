package command

import (
	"regexp"
	"strings"

	"house-maid/internal/config"

	"github.com/bwmarrin/discordgo"
)

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

func respondEmbedWithContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string, embed *discordgo.MessageEmbed) {
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Embeds:  []*discordgo.MessageEmbed{embed},
		},
	})
}

// Option helpers. Slash options arrive as a flat (or nested) list; commands
// look values up by name.

func optString(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range opts {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func optInt(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) (int, bool) {
	for _, opt := range opts {
		if opt.Name == name {
			return int(opt.IntValue()), true
		}
	}
	return 0, false
}

func optBool(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) (bool, bool) {
	for _, opt := range opts {
		if opt.Name == name {
			return opt.BoolValue(), true
		}
	}
	return false, false
}

func optUser(s *discordgo.Session, opts []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.User {
	for _, opt := range opts {
		if opt.Name == name {
			return opt.UserValue(s)
		}
	}
	return nil
}

func optChannel(s *discordgo.Session, opts []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.Channel {
	for _, opt := range opts {
		if opt.Name == name {
			return opt.ChannelValue(s)
		}
	}
	return nil
}

func fetchGuild(s *discordgo.Session, guildID string) *discordgo.Guild {
	guild, err := s.State.Guild(guildID)
	if err != nil || guild == nil {
		guild, err = s.Guild(guildID)
		if err != nil {
			return nil
		}
	}
	return guild
}

// discordRoleNames resolves a member's Discord role ids to names.
func discordRoleNames(s *discordgo.Session, guildID string, member *discordgo.Member) []string {
	guild := fetchGuild(s, guildID)
	if guild == nil {
		return nil
	}
	byID := make(map[string]string, len(guild.Roles))
	for _, r := range guild.Roles {
		byID[r.ID] = r.Name
	}
	var names []string
	for _, id := range member.Roles {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

func hasDiscordRole(s *discordgo.Session, guildID string, member *discordgo.Member, roleName string) bool {
	for _, name := range discordRoleNames(s, guildID, member) {
		if strings.EqualFold(name, roleName) {
			return true
		}
	}
	return false
}

// isHeadOfHousehold reports whether the member is the guild owner or carries
// the configured Head of Household role.
func isHeadOfHousehold(s *discordgo.Session, cfg *config.Config, guildID string, member *discordgo.Member) bool {
	if member == nil {
		return false
	}
	if guild := fetchGuild(s, guildID); guild != nil && member.User.ID == guild.OwnerID {
		return true
	}
	return hasDiscordRole(s, guildID, member, cfg.RoleHead)
}

// familyType buckets a member by their Discord role: head, kid, sibling, kin
// or guest.
func familyType(s *discordgo.Session, cfg *config.Config, guildID string, member *discordgo.Member) string {
	switch {
	case hasDiscordRole(s, guildID, member, cfg.RoleHead):
		return "head"
	case hasDiscordRole(s, guildID, member, cfg.RoleKids):
		return "kid"
	case hasDiscordRole(s, guildID, member, cfg.RoleSiblings):
		return "sibling"
	case hasDiscordRole(s, guildID, member, cfg.RoleKin):
		return "kin"
	default:
		return "guest"
	}
}

func displayName(s *discordgo.Session, guildID string, user *discordgo.User) string {
	if user == nil {
		return "dear"
	}
	member, err := s.State.Member(guildID, user.ID)
	if err != nil || member == nil {
		member, _ = s.GuildMember(guildID, user.ID)
	}
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

var (
	headTitleRe   = regexp.MustCompile(`(mom|dad|parent|guardian)`)
	youngMasterRe = regexp.MustCompile(`(child|kid|son|teen)`)
	youngMissRe   = regexp.MustCompile(`(daughter|miss)`)
)

// displayFor resolves how the maid addresses a member: explicit address
// first, then a title derived from the family role, then the display name.
func displayFor(ctx *SlashContext, userID, fallbackName string) string {
	if userID == "" {
		return "dear"
	}
	if addr := ctx.Storage.Address(ctx.Event.GuildID, userID); addr != "" {
		return addr
	}
	role := ctx.Storage.RoleOfUser(ctx.Event.GuildID, userID)
	if role == "" {
		return fallbackName
	}
	switch {
	case headTitleRe.MatchString(role):
		return "Head of Household"
	case youngMasterRe.MatchString(role):
		return "Young Master"
	case youngMissRe.MatchString(role):
		return "Young Miss"
	}
	return fallbackName
}
