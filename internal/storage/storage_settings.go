package storage

// Guild settings: personality mode, night mode, announcement channel,
// curfew, Second Life home and the global status rotation.

func (s *Storage) Mode(guildID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guild(guildID).Mode
}

// SetMode switches the personality and drops night mode, matching the
// behavior of an explicit mode change.
func (s *Storage) SetMode(guildID, mode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	g.Mode = mode
	g.NightMode = false
	s.ds.ScheduleSave()
}

func (s *Storage) NightMode(guildID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guild(guildID).NightMode
}

func (s *Storage) SetNightMode(guildID string, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guild(guildID).NightMode = enabled
	s.ds.ScheduleSave()
}

func (s *Storage) AnnounceChannel(guildID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guild(guildID).AnnounceChannelID
}

func (s *Storage) SetAnnounceChannel(guildID, channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guild(guildID).AnnounceChannelID = channelID
	s.ds.ScheduleSave()
}

func (s *Storage) Curfew(guildID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guild(guildID).Curfew
}

// SetCurfew stores a curfew time. The caller validates the HH:MM format
// first; storage does not parse it.
func (s *Storage) SetCurfew(guildID, hhmm string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guild(guildID).Curfew = hhmm
	s.ds.ScheduleSave()
}

func (s *Storage) Home(guildID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guild(guildID).SL.Home
}

func (s *Storage) SetHome(guildID, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guild(guildID).SL.Home = url
	s.ds.ScheduleSave()
}

// Statuses returns a copy of the global status rotation.
func (s *Storage) Statuses() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.data.Global.StatusRotation))
	copy(out, s.data.Global.StatusRotation)
	return out
}

// AddStatus appends to the status rotation (append-only).
func (s *Storage) AddStatus(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Global.StatusRotation = append(s.data.Global.StatusRotation, text)
	s.ds.ScheduleSave()
}

func (s *Storage) StatusIntervalMinutes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Global.StatusIntervalMinutes
}
