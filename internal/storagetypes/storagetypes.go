package storagetypes

import (
	"time"
)

// Personality modes the maid can be switched between.
const (
	ModePolite  = "polite"
	ModeSassy   = "sassy"
	ModeChaotic = "chaotic"
	ModeTired   = "tired"
)

// Recurrence rules for reminders. An empty repeat means one-shot:
// the reminder is removed after it fires.
const (
	RepeatNone   = ""
	RepeatDaily  = "daily"
	RepeatWeekly = "weekly"
	RepeatYearly = "yearly"
)

// Reminder is a scheduled notification. IDs are unique within a guild and
// assigned as max+1. Repeating reminders keep their id forever; the sweep
// rewrites Time in place.
type Reminder struct {
	ID        int       `json:"id"`
	GuildID   string    `json:"guildId"`
	ChannelID string    `json:"channelId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	Time      time.Time `json:"time"`
	Repeat    string    `json:"repeat,omitempty"`
}

type Note struct {
	UserID   string    `json:"userId"`
	Text     string    `json:"text"`
	AuthorID string    `json:"authorId"`
	At       time.Time `json:"at"`
}

type Joke struct {
	Text     string    `json:"text"`
	AuthorID string    `json:"authorId"`
	At       time.Time `json:"at"`
}

type SecondLife struct {
	Home string `json:"home,omitempty"`
}

// GuildRecord is the per-guild state. Created on first reference, never
// deleted. JSON names are camelCase so datasets written by earlier versions
// of the bot load unchanged.
type GuildRecord struct {
	Mode                string               `json:"mode"`
	NightMode           bool                 `json:"nightMode"`
	AnnounceChannelID   string               `json:"announceChannelId,omitempty"`
	LastActiveChannelID string               `json:"lastActiveChannelId,omitempty"`
	LastMessageAt       time.Time            `json:"lastMessageAt"`
	LastNudgeAt         time.Time            `json:"lastNudgeAt"`
	LastCurfewAt        string               `json:"lastCurfewAt,omitempty"` // YYYY-MM-DD of the last curfew firing
	Cooldowns           map[string]time.Time `json:"cooldowns"`
	Roles               map[string]string    `json:"roles"`       // lowercased role name -> user id
	RolesByUser         map[string]string    `json:"rolesByUser"` // user id -> lowercased role name
	Addresses           map[string]string    `json:"addresses"`   // user id -> custom address
	Notes               []Note               `json:"notes"`
	Jokes               []Joke               `json:"jokes"`
	Reminders           []Reminder           `json:"reminders"`
	SL                  SecondLife           `json:"sl"`
	Curfew              string               `json:"curfew"` // "HH:MM", 24h
	Favor               map[string]int       `json:"favor"`
	CheckIns            map[string]string    `json:"checkIns"` // user id -> YYYY-MM-DD
}

type GlobalConfig struct {
	StatusRotation        []string `json:"statusRotation"`
	StatusIntervalMinutes int      `json:"statusIntervalMinutes"`
}

// Dataset is the whole persisted document: { guilds: {...}, global: {...} }.
type Dataset struct {
	Guilds map[string]*GuildRecord `json:"guilds"`
	Global GlobalConfig            `json:"global"`
}
