// Package storage is the per-guild state store. The typed Dataset lives in
// memory and is authoritative; every mutation happens under one mutex
// ("one logical owner at a time") and schedules a debounced write-back
// through the datastore. Durable storage may lag the in-memory view by at
// most one debounce window.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"house-maid/datastore"
	st "house-maid/internal/storagetypes"
)

const (
	DefaultMode   = st.ModeSassy
	DefaultCurfew = "23:00"
)

type Storage struct {
	mu   sync.Mutex
	data *st.Dataset
	ds   *datastore.DataStore
}

// New opens the storage, loading the dataset from filePath or starting from
// defaults when no file exists yet.
func New(filePath string) (*Storage, error) {
	return NewWithConfig(datastore.DefaultConfig(filePath))
}

// NewWithConfig opens the storage with a custom datastore configuration.
func NewWithConfig(cfg *datastore.Config) (*Storage, error) {
	s := &Storage{data: defaultDataset()}

	ds, err := datastore.NewWithConfig(cfg, s.snapshot)
	if err != nil {
		return nil, err
	}
	s.ds = ds

	raw, err := ds.Load()
	if err != nil {
		ds.Close()
		return nil, err
	}
	if raw != nil {
		var loaded st.Dataset
		if err := json.Unmarshal(raw, &loaded); err != nil {
			ds.Close()
			return nil, fmt.Errorf("error unmarshalling dataset: %w", err)
		}
		s.mu.Lock()
		s.data = &loaded
		if s.data.Guilds == nil {
			s.data.Guilds = map[string]*st.GuildRecord{}
		}
		for _, g := range s.data.Guilds {
			fillGuildDefaults(g)
		}
		if len(s.data.Global.StatusRotation) == 0 {
			s.data.Global = defaultGlobal()
		}
		s.mu.Unlock()
	}

	return s, nil
}

// Close flushes the dataset one last time.
func (s *Storage) Close() error {
	return s.ds.Close()
}

// Flush forces an immediate durable write, bypassing the debounce window.
func (s *Storage) Flush() error {
	return s.ds.SaveNow()
}

// Stats exposes persistence statistics (save counts, pending flag).
func (s *Storage) Stats() map[string]any {
	return s.ds.Stats()
}

// snapshot serializes the dataset for the datastore. Called from the
// datastore's save path; the storage mutex guards the data.
func (s *Storage) snapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.MarshalIndent(s.data, "", "  ")
}

// guild returns the state for guildID, creating the default record on first
// reference. Caller must hold s.mu.
func (s *Storage) guild(guildID string) *st.GuildRecord {
	g, ok := s.data.Guilds[guildID]
	if !ok {
		g = defaultGuild()
		s.data.Guilds[guildID] = g
		s.ds.ScheduleSave()
	}
	return g
}

// GuildIDs returns all known guild ids in stable order.
func (s *Storage) GuildIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.data.Guilds))
	for id := range s.data.Guilds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func defaultDataset() *st.Dataset {
	return &st.Dataset{
		Guilds: map[string]*st.GuildRecord{},
		Global: defaultGlobal(),
	}
}

func defaultGlobal() st.GlobalConfig {
	return st.GlobalConfig{
		StatusRotation: []string{
			"Polishing silverware",
			"Judging quietly",
			"Preparing snacks",
			"Watching the hallway",
		},
		StatusIntervalMinutes: 10,
	}
}

func defaultGuild() *st.GuildRecord {
	g := &st.GuildRecord{
		Mode:   DefaultMode,
		Curfew: DefaultCurfew,
	}
	fillGuildDefaults(g)
	return g
}

// fillGuildDefaults backfills nil maps on records loaded from older files.
func fillGuildDefaults(g *st.GuildRecord) {
	if g.Mode == "" {
		g.Mode = DefaultMode
	}
	if g.Curfew == "" {
		g.Curfew = DefaultCurfew
	}
	if g.Cooldowns == nil {
		g.Cooldowns = map[string]time.Time{}
	}
	if g.Roles == nil {
		g.Roles = map[string]string{}
	}
	if g.RolesByUser == nil {
		g.RolesByUser = map[string]string{}
	}
	if g.Addresses == nil {
		g.Addresses = map[string]string{}
	}
	if g.Favor == nil {
		g.Favor = map[string]int{}
	}
	if g.CheckIns == nil {
		g.CheckIns = map[string]string{}
	}
}
