package memory

import "moap_dashboard/internal/domain/entities"

// Snapshot is a deep copy of the persisted collections. The user roster is
// static and not part of it.
//
// A nil slice means "not present": Restore leaves that collection untouched.
type Snapshot struct {
	Materials     []entities.Material     `json:"materials"`
	Budgets       []entities.Budget       `json:"budgets"`
	Obras         []entities.Obra         `json:"obras"`
	Visitas       []entities.Visita       `json:"visitas"`
	Concursos     []entities.Concurso     `json:"concursos"`
	Conversations []entities.Conversation `json:"conversations"`
	Messages      []entities.Message      `json:"messages"`
	Notifications []entities.Notification `json:"notifications"`
	Invitations   []entities.Invitation   `json:"invitations"`
}

// Snapshot exports every persisted collection. All slices are non-nil.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Materials:     cloneAll(s.state.materials),
		Budgets:       cloneAll(s.state.budgets),
		Obras:         cloneAll(s.state.obras),
		Visitas:       cloneAll(s.state.visitas),
		Concursos:     cloneAll(s.state.concursos),
		Conversations: cloneAll(s.state.conversations),
		Messages:      cloneAll(s.state.messages),
		Notifications: cloneAll(s.state.notifications),
		Invitations:   cloneAll(s.state.invitations),
	}
}

// Restore replaces the collections present in snap. It does not notify
// subscribers: restoring is how persisted state comes back, not a mutation.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	restoreInto(&s.state.materials, snap.Materials)
	restoreInto(&s.state.budgets, snap.Budgets)
	restoreInto(&s.state.obras, snap.Obras)
	restoreInto(&s.state.visitas, snap.Visitas)
	restoreInto(&s.state.concursos, snap.Concursos)
	restoreInto(&s.state.conversations, snap.Conversations)
	restoreInto(&s.state.messages, snap.Messages)
	restoreInto(&s.state.notifications, snap.Notifications)
	restoreInto(&s.state.invitations, snap.Invitations)
}

// Seed replaces every collection, users included, with the built-in data set.
func (s *Store) Seed() {
	seed := seedData()
	s.Restore(seed.Snapshot)
	s.mu.Lock()
	s.state.users = cloneAll(seed.Users)
	s.mu.Unlock()
}

// SeedRoster loads the built-in user roster and nothing else.
func (s *Store) SeedRoster() {
	users := seedData().Users
	s.mu.Lock()
	s.state.users = cloneAll(users)
	s.mu.Unlock()
}

func restoreInto[T entities.Entity[T]](dst *[]T, src []T) {
	if src == nil {
		return
	}
	*dst = cloneAll(src)
}
