package storage

import (
	"errors"
	"sort"
)

// ErrAlreadyCheckedIn is returned when a member checks in twice on the same
// calendar day.
var ErrAlreadyCheckedIn = errors.New("already checked in today")

// FavorEntry is one member's standing in the favor ledger.
type FavorEntry struct {
	UserID string
	Points int
}

// AdjustFavor applies delta to a member's favor and returns the new total.
func (s *Storage) AdjustFavor(guildID, userID string, delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	g.Favor[userID] += delta
	s.ds.ScheduleSave()
	return g.Favor[userID]
}

// Favor returns a member's current favor total.
func (s *Storage) Favor(guildID, userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guild(guildID).Favor[userID]
}

// CheckIn awards one favor point for the first check-in of a calendar day.
// A second attempt on the same day returns ErrAlreadyCheckedIn without
// touching the ledger.
func (s *Storage) CheckIn(guildID, userID, today string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	if g.CheckIns[userID] == today {
		return g.Favor[userID], ErrAlreadyCheckedIn
	}
	g.CheckIns[userID] = today
	g.Favor[userID]++
	s.ds.ScheduleSave()
	return g.Favor[userID], nil
}

// FavorSummary returns the best-standing member and, only when someone is in
// the negative, the worst-standing one. Ties break on user id so the output
// is stable.
func (s *Storage) FavorSummary(guildID string) (top FavorEntry, bottom FavorEntry, hasTop, hasBottom bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	if len(g.Favor) == 0 {
		return FavorEntry{}, FavorEntry{}, false, false
	}

	ids := make([]string, 0, len(g.Favor))
	for id := range g.Favor {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	top = FavorEntry{UserID: ids[0], Points: g.Favor[ids[0]]}
	low := top
	for _, id := range ids[1:] {
		pts := g.Favor[id]
		if pts > top.Points {
			top = FavorEntry{UserID: id, Points: pts}
		}
		if pts < low.Points {
			low = FavorEntry{UserID: id, Points: pts}
		}
	}

	hasTop = true
	if low.Points < 0 {
		return top, low, true, true
	}
	return top, FavorEntry{}, true, false
}
