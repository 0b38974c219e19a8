package watch

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jmhodges/clock"
	"github.com/stretchr/testify/require"

	"house-maid/internal/storage"
	st "house-maid/internal/storagetypes"
)

type sentMessage struct {
	channelID string
	content   string
}

type fakeMessenger struct {
	mu       sync.Mutex
	messages []sentMessage
	embeds   []sentMessage
	fail     bool
	kidsRole string
}

func (f *fakeMessenger) SendMessage(channelID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("send failed")
	}
	f.messages = append(f.messages, sentMessage{channelID, content})
	return nil
}

func (f *fakeMessenger) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("send failed")
	}
	f.embeds = append(f.embeds, sentMessage{channelID, embed.Description})
	return nil
}

func (f *fakeMessenger) ResolveRole(guildID, roleName string) (string, bool) {
	if f.kidsRole == "" {
		return "", false
	}
	return f.kidsRole, true
}

func newTestWatcher(t *testing.T) (*Watcher, *storage.Storage, *fakeMessenger, clock.FakeClock) {
	t.Helper()
	store, err := storage.New(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	msg := &fakeMessenger{}
	clk := clock.NewFake()
	clk.Set(time.Date(2026, 5, 1, 12, 0, 0, 0, time.Local))

	return New(store, msg, clk, Config{}), store, msg, clk
}

func TestSweepRemindersFiresAndSettles(t *testing.T) {
	w, store, msg, clk := newTestWatcher(t)
	now := clk.Now()

	weekly := store.AddReminder("g1", st.Reminder{ChannelID: "c1", Text: "tradition", Time: now.Add(-time.Minute), Repeat: st.RepeatWeekly})
	store.AddReminder("g1", st.Reminder{ChannelID: "c1", Text: "once", Time: now.Add(-time.Minute)})
	store.AddReminder("g1", st.Reminder{ChannelID: "c1", Text: "not yet", Time: now.Add(time.Hour)})

	w.SweepReminders()

	require.Len(t, msg.messages, 2)
	require.Equal(t, "tradition", msg.messages[0].content)
	require.Equal(t, "once", msg.messages[1].content)

	remaining := store.Reminders("g1")
	require.Len(t, remaining, 2)
	require.Equal(t, weekly, remaining[0].ID)
	require.True(t, remaining[0].Time.After(now))

	// Immediately sweeping again fires nothing.
	w.SweepReminders()
	require.Len(t, msg.messages, 2)
}

func TestSweepRemindersSettlesEvenWhenDeliveryFails(t *testing.T) {
	w, store, msg, clk := newTestWatcher(t)
	now := clk.Now()

	store.AddReminder("g1", st.Reminder{ChannelID: "c1", Text: "once", Time: now.Add(-time.Minute)})
	msg.fail = true

	w.SweepReminders()

	// State settled first: the reminder is gone despite the failed send.
	require.Empty(t, store.Reminders("g1"))
	require.Empty(t, msg.messages)
}

func TestCheckQuietNudgesOncePerWindow(t *testing.T) {
	w, store, msg, clk := newTestWatcher(t)

	store.TouchActivity("g1", "c1", clk.Now())

	w.CheckQuiet()
	require.Empty(t, msg.messages, "active channel should not be nudged")

	clk.Add(31 * time.Minute)
	w.CheckQuiet()
	require.Len(t, msg.messages, 1)
	require.Equal(t, "c1", msg.messages[0].channelID)

	// The nudge itself starts a fresh window.
	w.CheckQuiet()
	require.Len(t, msg.messages, 1)

	clk.Add(31 * time.Minute)
	w.CheckQuiet()
	require.Len(t, msg.messages, 2)
}

func TestCheckQuietSkipsGuildsWithoutActivity(t *testing.T) {
	w, store, msg, clk := newTestWatcher(t)

	// Guild exists but never saw a message.
	store.SetNightMode("g1", false)
	clk.Add(24 * time.Hour)

	w.CheckQuiet()
	require.Empty(t, msg.messages)
}

func TestCheckCurfewFiresOncePerDay(t *testing.T) {
	w, store, msg, clk := newTestWatcher(t)

	store.TouchActivity("g1", "c1", clk.Now())
	store.SetCurfew("g1", "21:00")

	w.CheckCurfew()
	require.Empty(t, msg.embeds, "before curfew nothing fires")

	clk.Set(time.Date(2026, 5, 1, 21, 5, 0, 0, time.Local))
	w.CheckCurfew()
	require.Len(t, msg.embeds, 1)
	require.Contains(t, msg.embeds[0].content, "Children")

	// Later the same evening: still once per day.
	clk.Add(time.Hour)
	w.CheckCurfew()
	require.Len(t, msg.embeds, 1)

	// Next evening fires again.
	clk.Set(time.Date(2026, 5, 2, 21, 5, 0, 0, time.Local))
	w.CheckCurfew()
	require.Len(t, msg.embeds, 2)
}

func TestCheckCurfewMentionsKidsRole(t *testing.T) {
	w, store, msg, clk := newTestWatcher(t)
	msg.kidsRole = "role123"

	store.TouchActivity("g1", "c1", clk.Now())
	store.SetCurfew("g1", "21:00")

	clk.Set(time.Date(2026, 5, 1, 21, 5, 0, 0, time.Local))
	w.CheckCurfew()
	require.Len(t, msg.embeds, 1)
	require.Contains(t, msg.embeds[0].content, "<@&role123>")
}

func TestCheckCurfewSkipsBadCurfew(t *testing.T) {
	w, store, msg, clk := newTestWatcher(t)

	store.TouchActivity("g1", "c1", clk.Now())
	store.SetCurfew("g1", "not-a-time")

	clk.Add(24 * time.Hour)
	w.CheckCurfew()
	require.Empty(t, msg.embeds)
}
