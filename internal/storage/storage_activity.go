package storage

import (
	"time"
)

// Activity cursors feed the idle and curfew watchers. Every observed
// message or command updates them.

// TouchActivity records that something happened in channelID.
func (s *Storage) TouchActivity(guildID, channelID string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	g.LastMessageAt = now
	g.LastActiveChannelID = channelID
	s.ds.ScheduleSave()
}

// ActivityInfo returns the idle-detection cursors for a guild.
func (s *Storage) ActivityInfo(guildID string) (channelID string, lastMessage, lastNudge time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	return g.LastActiveChannelID, g.LastMessageAt, g.LastNudgeAt
}

// MarkNudged stamps lastNudgeAt, resetting the idle rate-limit window.
func (s *Storage) MarkNudged(guildID string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guild(guildID).LastNudgeAt = now
	s.ds.ScheduleSave()
}

// CurfewInfo returns what the curfew watcher needs for one guild.
func (s *Storage) CurfewInfo(guildID string) (curfew, channelID, lastCurfewAt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	return g.Curfew, g.LastActiveChannelID, g.LastCurfewAt
}

// MarkCurfew records that the curfew notice fired for the given calendar
// day, suppressing further fires until the day string changes.
func (s *Storage) MarkCurfew(guildID, day string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guild(guildID).LastCurfewAt = day
	s.ds.ScheduleSave()
}

// ClaimCooldown reports whether the keyed cooldown has elapsed, and stamps
// it when it has. Used as a generic per-feature rate limit
// (e.g. "calm:<channelId>").
func (s *Storage) ClaimCooldown(guildID, key string, now time.Time, window time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	if last, ok := g.Cooldowns[key]; ok && now.Sub(last) <= window {
		return false
	}
	g.Cooldowns[key] = now
	s.ds.ScheduleSave()
	return true
}
