package discord

import (
	"log"
	"regexp"
	"strings"
	"time"

	"house-maid/internal/command"
	"house-maid/internal/responses"

	"github.com/bwmarrin/discordgo"
)

var (
	tiredRe  = regexp.MustCompile(`(?i)\b(tired|sleepy)\b`)
	hungryRe = regexp.MustCompile(`(?i)\bhungry\b`)
	boredRe  = regexp.MustCompile(`(?i)\bbored\b`)
	dramaRe  = regexp.MustCompile(`(?i)\b(drama|fight|argue)\b`)
)

const calmCooldown = 10 * time.Minute

// onMessageCreate tracks channel activity and runs the keyword reactions.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.Bot || m.GuildID == "" {
		return
	}

	b.storage.TouchActivity(m.GuildID, m.ChannelID, b.clk.Now())

	b.maybeReact(s, m, "dirty", "🧽")
	b.maybeReact(s, m, "food", "🍽️")

	if tiredRe.MatchString(m.Content) {
		b.sendLine(m.ChannelID, responses.Choose(responses.TiredReplies))
	}
	if hungryRe.MatchString(m.Content) {
		b.sendLine(m.ChannelID, responses.Choose(responses.HungryReplies))
	}
	if boredRe.MatchString(m.Content) {
		b.sendLine(m.ChannelID, responses.Choose(responses.BoredReplies))
	}

	if dramaRe.MatchString(m.Content) {
		key := "calm:" + m.ChannelID
		if b.storage.ClaimCooldown(m.GuildID, key, b.clk.Now(), calmCooldown) {
			b.sendLine(m.ChannelID, responses.Choose(responses.CalmReminders))
		}
	}
}

func (b *Bot) maybeReact(s *discordgo.Session, m *discordgo.MessageCreate, keyword, emoji string) {
	if strings.Contains(strings.ToLower(m.Content), keyword) {
		if err := s.MessageReactionAdd(m.ChannelID, m.ID, emoji); err != nil {
			log.Println("[WARN] Failed to add reaction:", err)
		}
	}
}

func (b *Bot) sendLine(channelID, content string) {
	if err := b.messenger.SendMessage(channelID, content); err != nil {
		log.Println("[WARN] Failed to send message:", err)
	}
}

// onInteractionCreate dispatches slash commands through the registry.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	if i.GuildID != "" {
		b.storage.TouchActivity(i.GuildID, i.ChannelID, b.clk.Now())
	}

	name := i.ApplicationCommandData().Name
	cmd, ok := command.Get(name)
	if !ok {
		log.Println("[WARN] Unknown command:", name)
		return
	}

	ctx := &command.SlashContext{
		Session: s,
		Event:   i,
		Storage: b.storage,
		Config:  b.cfg,
		Clock:   b.clk,
	}
	if err := cmd.Run(ctx); err != nil {
		log.Printf("[ERR] Error running command %s: %v", name, err)
	}
}
