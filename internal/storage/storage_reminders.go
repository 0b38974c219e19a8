package storage

import (
	"time"

	"house-maid/internal/schedule"
	st "house-maid/internal/storagetypes"
)

// AddReminder assigns the next free id (max+1) and appends the reminder.
// Returns the assigned id.
func (s *Storage) AddReminder(guildID string, r st.Reminder) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)

	maxID := 0
	for _, existing := range g.Reminders {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	r.ID = maxID + 1
	r.GuildID = guildID
	g.Reminders = append(g.Reminders, r)
	s.ds.ScheduleSave()
	return r.ID
}

// DeleteReminder removes a reminder by id. Returns false when no such id
// exists.
func (s *Storage) DeleteReminder(guildID string, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	for i, r := range g.Reminders {
		if r.ID == id {
			g.Reminders = append(g.Reminders[:i], g.Reminders[i+1:]...)
			s.ds.ScheduleSave()
			return true
		}
	}
	return false
}

// Reminders returns a copy of the guild's reminders in insertion order.
func (s *Storage) Reminders(guildID string) []st.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	out := make([]st.Reminder, len(g.Reminders))
	copy(out, g.Reminders)
	return out
}

// DueReminders returns copies of all reminders whose time has come, in
// insertion order.
func (s *Storage) DueReminders(guildID string, now time.Time) []st.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	var due []st.Reminder
	for _, r := range g.Reminders {
		if !r.Time.After(now) {
			due = append(due, r)
		}
	}
	return due
}

// SettleReminders advances or removes reminders that just fired: repeating
// ones get their next occurrence written in place (same id), one-shot ones
// are dropped. One save is scheduled for the whole batch.
func (s *Storage) SettleReminders(guildID string, fired []st.Reminder) {
	if len(fired) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)

	firedIDs := make(map[int]bool, len(fired))
	for _, r := range fired {
		firedIDs[r.ID] = true
	}

	kept := g.Reminders[:0]
	for _, r := range g.Reminders {
		if !firedIDs[r.ID] {
			kept = append(kept, r)
			continue
		}
		if r.Repeat == st.RepeatNone {
			continue
		}
		r.Time = schedule.Advance(r.Time, r.Repeat)
		kept = append(kept, r)
	}
	g.Reminders = kept
	s.ds.ScheduleSave()
}
