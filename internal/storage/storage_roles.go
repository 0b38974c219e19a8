package storage

import "strings"

// Family roles are kept as two maps, role name -> user and user -> role name.
// Both are updated together so a reassignment never leaves a stale entry in
// either direction.

// SetFamilyRole assigns a family role (stored lowercase) to a user. Any
// previous holder of the role and any previous role of the user are cleared.
func (s *Storage) SetFamilyRole(guildID, roleName, userID string) {
	name := strings.ToLower(roleName)

	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)

	if prev, ok := g.Roles[name]; ok && prev != userID {
		if g.RolesByUser[prev] == name {
			delete(g.RolesByUser, prev)
		}
	}
	if prevRole, ok := g.RolesByUser[userID]; ok && prevRole != name {
		if g.Roles[prevRole] == userID {
			delete(g.Roles, prevRole)
		}
	}

	g.Roles[name] = userID
	g.RolesByUser[userID] = name
	s.ds.ScheduleSave()
}

// FamilyRoles returns a copy of the role name -> user id map.
func (s *Storage) FamilyRoles(guildID string) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	out := make(map[string]string, len(g.Roles))
	for k, v := range g.Roles {
		out[k] = v
	}
	return out
}

// RoleOfUser returns the family role held by a user, or "".
func (s *Storage) RoleOfUser(guildID, userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guild(guildID).RolesByUser[userID]
}

// SetAddress stores how the maid addresses a user ("Miss", "Young Master").
func (s *Storage) SetAddress(guildID, userID, address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guild(guildID).Addresses[userID] = address
	s.ds.ScheduleSave()
}

// Address returns the stored address form for a user, or "".
func (s *Storage) Address(guildID, userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guild(guildID).Addresses[userID]
}
