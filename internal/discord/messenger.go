package discord

import (
	"context"
	"strings"

	"house-maid/pkg/sendlimit"

	"github.com/bwmarrin/discordgo"
)

// Messenger is the rate-limited outbound surface handed to the watchers.
type Messenger struct {
	session *discordgo.Session
	lim     *sendlimit.Limiter
}

func NewMessenger(session *discordgo.Session) *Messenger {
	return &Messenger{
		session: session,
		lim:     sendlimit.New(5, 1, 20),
	}
}

func (m *Messenger) SendMessage(channelID, content string) error {
	if err := m.lim.Wait(context.Background()); err != nil {
		return err
	}
	_, err := m.session.ChannelMessageSend(channelID, content)
	m.lim.Done(err != nil)
	return err
}

func (m *Messenger) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	if err := m.lim.Wait(context.Background()); err != nil {
		return err
	}
	_, err := m.session.ChannelMessageSendEmbed(channelID, embed)
	m.lim.Done(err != nil)
	return err
}

// ResolveRole finds a Discord role id by name, case-insensitively.
func (m *Messenger) ResolveRole(guildID, roleName string) (string, bool) {
	guild, err := m.session.State.Guild(guildID)
	if err != nil || guild == nil {
		guild, err = m.session.Guild(guildID)
		if err != nil {
			return "", false
		}
	}
	for _, role := range guild.Roles {
		if strings.EqualFold(role.Name, roleName) {
			return role.ID, true
		}
	}
	return "", false
}
