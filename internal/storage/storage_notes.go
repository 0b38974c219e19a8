package storage

import (
	"math/rand"

	st "house-maid/internal/storagetypes"
)

// AddNote records a note about a household member.
func (s *Storage) AddNote(guildID string, n st.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	g.Notes = append(g.Notes, n)
	s.ds.ScheduleSave()
}

// Notes returns notes in insertion order. When userID is non-empty only notes
// about that member are returned.
func (s *Storage) Notes(guildID, userID string) []st.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	var out []st.Note
	for _, n := range g.Notes {
		if userID != "" && n.UserID != userID {
			continue
		}
		out = append(out, n)
	}
	return out
}

// AddJoke stores a remembered joke or quote.
func (s *Storage) AddJoke(guildID string, j st.Joke) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	g.Jokes = append(g.Jokes, j)
	s.ds.ScheduleSave()
}

// RandomJoke returns a uniformly random remembered joke, or ok=false when
// none exist.
func (s *Storage) RandomJoke(guildID string) (st.Joke, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	if len(g.Jokes) == 0 {
		return st.Joke{}, false
	}
	return g.Jokes[rand.Intn(len(g.Jokes))], true
}
