// Package watch runs the periodic household loops: the reminder sweep, the
// idle-channel nudge and the curfew notice. Each loop is a cron entry with a
// skip-if-still-running chain, so a slow tick never stacks behind itself.
package watch

import (
	"fmt"
	"log"
	"time"

	"house-maid/internal/responses"
	"house-maid/internal/schedule"
	"house-maid/internal/storage"

	"github.com/bwmarrin/discordgo"
	"github.com/jmhodges/clock"
	"github.com/robfig/cron/v3"
)

// Messenger is the outbound delivery surface the watchers need. Delivery
// failures are logged and swallowed; state is already settled by the time a
// send happens.
type Messenger interface {
	SendMessage(channelID, content string) error
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) error
	ResolveRole(guildID, roleName string) (roleID string, ok bool)
}

type Config struct {
	SweepInterval  time.Duration
	QuietInterval  time.Duration
	CurfewInterval time.Duration
	QuietWindow    time.Duration
	KidsRoleName   string
}

func DefaultConfig() Config {
	return Config{
		SweepInterval:  30 * time.Second,
		QuietInterval:  5 * time.Minute,
		CurfewInterval: 5 * time.Minute,
		QuietWindow:    30 * time.Minute,
		KidsRoleName:   "Kids",
	}
}

type Watcher struct {
	store *storage.Storage
	msg   Messenger
	clk   clock.Clock
	cfg   Config
	cron  *cron.Cron
}

func New(store *storage.Storage, msg Messenger, clk clock.Clock, cfg Config) *Watcher {
	def := DefaultConfig()
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = def.SweepInterval
	}
	if cfg.QuietInterval <= 0 {
		cfg.QuietInterval = def.QuietInterval
	}
	if cfg.CurfewInterval <= 0 {
		cfg.CurfewInterval = def.CurfewInterval
	}
	if cfg.QuietWindow <= 0 {
		cfg.QuietWindow = def.QuietWindow
	}
	if cfg.KidsRoleName == "" {
		cfg.KidsRoleName = def.KidsRoleName
	}
	return &Watcher{store: store, msg: msg, clk: clk, cfg: cfg}
}

// Start schedules the three loops and returns immediately.
func (w *Watcher) Start() error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	entries := []struct {
		spec string
		run  func()
	}{
		{fmt.Sprintf("@every %s", w.cfg.SweepInterval), w.SweepReminders},
		{fmt.Sprintf("@every %s", w.cfg.QuietInterval), w.CheckQuiet},
		{fmt.Sprintf("@every %s", w.cfg.CurfewInterval), w.CheckCurfew},
	}
	for _, e := range entries {
		if _, err := c.AddFunc(e.spec, e.run); err != nil {
			return fmt.Errorf("failed to schedule watcher: %w", err)
		}
	}
	c.Start()
	w.cron = c
	return nil
}

// Stop halts scheduling and waits for any running tick to finish.
func (w *Watcher) Stop() {
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

// SweepReminders fires all due reminders. State is settled first (repeats
// advanced, one-shots removed), then messages go out; a failed send is lost,
// not retried.
func (w *Watcher) SweepReminders() {
	now := w.clk.Now()
	for _, guildID := range w.store.GuildIDs() {
		due := w.store.DueReminders(guildID, now)
		if len(due) == 0 {
			continue
		}
		w.store.SettleReminders(guildID, due)
		for _, r := range due {
			if err := w.msg.SendMessage(r.ChannelID, r.Text); err != nil {
				log.Printf("[WARN] Reminder #%d delivery failed in guild %s: %v", r.ID, guildID, err)
			}
		}
	}
}

// CheckQuiet nudges the last active channel of a guild that has been silent
// for the quiet window, at most once per window.
func (w *Watcher) CheckQuiet() {
	now := w.clk.Now()
	for _, guildID := range w.store.GuildIDs() {
		channelID, lastMessage, lastNudge := w.store.ActivityInfo(guildID)
		if channelID == "" {
			continue
		}
		if now.Sub(lastMessage) < w.cfg.QuietWindow {
			continue
		}
		if now.Sub(lastNudge) < w.cfg.QuietWindow {
			continue
		}
		w.store.MarkNudged(guildID, now)
		if err := w.msg.SendMessage(channelID, responses.Choose(responses.IdleNudges)); err != nil {
			log.Printf("[WARN] Idle nudge delivery failed in guild %s: %v", guildID, err)
		}
	}
}

// CheckCurfew posts the curfew notice once per calendar day after the
// guild's curfew time has passed.
func (w *Watcher) CheckCurfew() {
	now := w.clk.Now()
	for _, guildID := range w.store.GuildIDs() {
		curfew, channelID, lastCurfewAt := w.store.CurfewInfo(guildID)
		if channelID == "" {
			continue
		}
		tod, err := schedule.ParseTimeOfDay(curfew)
		if err != nil {
			continue
		}
		curfewAt := schedule.AtTimeOfDay(now, tod)
		if now.Before(curfewAt) {
			continue
		}
		day := schedule.DayString(curfewAt)
		if lastCurfewAt == day {
			continue
		}
		w.store.MarkCurfew(guildID, day)

		mention := "Children"
		if roleID, ok := w.msg.ResolveRole(guildID, w.cfg.KidsRoleName); ok {
			mention = "<@&" + roleID + ">"
		}
		embed := responses.MaidEmbed(
			"🕰 Curfew Notice",
			fmt.Sprintf("It is past curfew. %s should be asleep. I am watching.", mention),
			responses.ColorNight,
		)
		if err := w.msg.SendEmbed(channelID, embed); err != nil {
			log.Printf("[WARN] Curfew notice delivery failed in guild %s: %v", guildID, err)
		}
	}
}
