package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	st "house-maid/internal/storagetypes"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDefaults(t *testing.T) {
	s := newTestStorage(t)

	require.Equal(t, st.ModeSassy, s.Mode("g1"))
	require.Equal(t, "23:00", s.Curfew("g1"))
	require.False(t, s.NightMode("g1"))
	require.NotEmpty(t, s.Statuses())
	require.Equal(t, 10, s.StatusIntervalMinutes())
}

func TestSetModeDropsNightMode(t *testing.T) {
	s := newTestStorage(t)

	s.SetNightMode("g1", true)
	require.True(t, s.NightMode("g1"))

	s.SetMode("g1", st.ModeChaotic)
	require.Equal(t, st.ModeChaotic, s.Mode("g1"))
	require.False(t, s.NightMode("g1"))
}

func TestReminderIDsNeverReused(t *testing.T) {
	s := newTestStorage(t)
	when := time.Date(2026, 5, 1, 12, 0, 0, 0, time.Local)

	id1 := s.AddReminder("g1", st.Reminder{ChannelID: "c1", Text: "one", Time: when})
	id2 := s.AddReminder("g1", st.Reminder{ChannelID: "c1", Text: "two", Time: when})
	id3 := s.AddReminder("g1", st.Reminder{ChannelID: "c1", Text: "three", Time: when})
	require.Equal(t, []int{1, 2, 3}, []int{id1, id2, id3})

	require.True(t, s.DeleteReminder("g1", id2))
	require.False(t, s.DeleteReminder("g1", id2))

	// Holes do not get refilled: max+1 keeps ids unique among live reminders.
	id4 := s.AddReminder("g1", st.Reminder{ChannelID: "c1", Text: "four", Time: when})
	require.Equal(t, 4, id4)
}

func TestDueAndSettleReminders(t *testing.T) {
	s := newTestStorage(t)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.Local)

	oneShot := s.AddReminder("g1", st.Reminder{ChannelID: "c1", Text: "once", Time: now.Add(-time.Minute)})
	weekly := s.AddReminder("g1", st.Reminder{ChannelID: "c1", Text: "weekly", Time: now.Add(-time.Minute), Repeat: st.RepeatWeekly})
	s.AddReminder("g1", st.Reminder{ChannelID: "c1", Text: "later", Time: now.Add(time.Hour)})

	due := s.DueReminders("g1", now)
	require.Len(t, due, 2)
	require.Equal(t, oneShot, due[0].ID)
	require.Equal(t, weekly, due[1].ID)

	s.SettleReminders("g1", due)

	remaining := s.Reminders("g1")
	require.Len(t, remaining, 2)

	// The weekly reminder kept its id and moved a week out.
	require.Equal(t, weekly, remaining[0].ID)
	require.Equal(t, due[1].Time.AddDate(0, 0, 7), remaining[0].Time)

	// Nothing is due right after settling.
	require.Empty(t, s.DueReminders("g1", now))
}

func TestCheckInOncePerDay(t *testing.T) {
	s := newTestStorage(t)

	total, err := s.CheckIn("g1", "u1", "2026-05-01")
	require.NoError(t, err)
	require.Equal(t, 1, total)

	_, err = s.CheckIn("g1", "u1", "2026-05-01")
	require.ErrorIs(t, err, ErrAlreadyCheckedIn)
	require.Equal(t, 1, s.Favor("g1", "u1"))

	total, err = s.CheckIn("g1", "u1", "2026-05-02")
	require.NoError(t, err)
	require.Equal(t, 2, total)
}

func TestFavorSummary(t *testing.T) {
	s := newTestStorage(t)

	_, _, hasTop, hasBottom := s.FavorSummary("g1")
	require.False(t, hasTop)
	require.False(t, hasBottom)

	s.AdjustFavor("g1", "u1", 10)
	s.AdjustFavor("g1", "u2", 3)

	top, _, hasTop, hasBottom := s.FavorSummary("g1")
	require.True(t, hasTop)
	require.Equal(t, "u1", top.UserID)
	require.Equal(t, 10, top.Points)
	// Nobody is negative, so there is no "most chaotic".
	require.False(t, hasBottom)

	s.AdjustFavor("g1", "u3", -5)
	_, bottom, _, hasBottom := s.FavorSummary("g1")
	require.True(t, hasBottom)
	require.Equal(t, "u3", bottom.UserID)
	require.Equal(t, -5, bottom.Points)
}

func TestFamilyRoleReassignment(t *testing.T) {
	s := newTestStorage(t)

	s.SetFamilyRole("g1", "Mom", "u1")
	require.Equal(t, "mom", s.RoleOfUser("g1", "u1"))
	require.Equal(t, map[string]string{"mom": "u1"}, s.FamilyRoles("g1"))

	// Handing the role to someone else clears the old holder's reverse entry.
	s.SetFamilyRole("g1", "mom", "u2")
	require.Equal(t, "", s.RoleOfUser("g1", "u1"))
	require.Equal(t, "mom", s.RoleOfUser("g1", "u2"))

	// Moving a user to a new role clears their old role's forward entry.
	s.SetFamilyRole("g1", "guardian", "u2")
	roles := s.FamilyRoles("g1")
	require.Equal(t, map[string]string{"guardian": "u2"}, roles)
	require.Equal(t, "guardian", s.RoleOfUser("g1", "u2"))
}

func TestNotesFilterByUser(t *testing.T) {
	s := newTestStorage(t)
	now := time.Now()

	s.AddNote("g1", st.Note{UserID: "u1", Text: "left socks out", AuthorID: "a", At: now})
	s.AddNote("g1", st.Note{UserID: "u2", Text: "helped with dinner", AuthorID: "a", At: now})

	require.Len(t, s.Notes("g1", ""), 2)
	notes := s.Notes("g1", "u2")
	require.Len(t, notes, 1)
	require.Equal(t, "helped with dinner", notes[0].Text)
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	s, err := New(path)
	require.NoError(t, err)

	s.SetMode("g1", st.ModeTired)
	s.SetCurfew("g1", "22:30")
	s.AddReminder("g1", st.Reminder{ChannelID: "c1", Text: "water the plants", Time: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)})
	s.AdjustFavor("g1", "u1", 5)
	require.NoError(t, s.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	require.Equal(t, st.ModeTired, reopened.Mode("g1"))
	require.Equal(t, "22:30", reopened.Curfew("g1"))
	require.Equal(t, 5, reopened.Favor("g1", "u1"))
	reminders := reopened.Reminders("g1")
	require.Len(t, reminders, 1)
	require.Equal(t, "water the plants", reminders[0].Text)
	require.Equal(t, 1, reminders[0].ID)
}

func TestClaimCooldown(t *testing.T) {
	s := newTestStorage(t)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.Local)

	require.True(t, s.ClaimCooldown("g1", "calm:c1", now, 10*time.Minute))
	require.False(t, s.ClaimCooldown("g1", "calm:c1", now.Add(5*time.Minute), 10*time.Minute))
	require.True(t, s.ClaimCooldown("g1", "calm:c1", now.Add(11*time.Minute), 10*time.Minute))

	// Keys are independent.
	require.True(t, s.ClaimCooldown("g1", "calm:c2", now, 10*time.Minute))
}
