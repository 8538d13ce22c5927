// Package memory holds the entity collection store: the single in-memory
// source of truth for every dashboard collection.
package memory

import (
	"sync"

	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/usecase/interfaces"
)

// Collection names, as used in change events and snapshot keys.
const (
	CollectionMaterials     = "materials"
	CollectionBudgets       = "budgets"
	CollectionObras         = "obras"
	CollectionVisitas       = "visitas"
	CollectionConcursos     = "concursos"
	CollectionUsers         = "users"
	CollectionConversations = "conversations"
	CollectionMessages      = "messages"
	CollectionNotifications = "notifications"
	CollectionInvitations   = "invitations"
)

type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Change describes one successful mutation. ID is empty for bulk operations,
// in which case Count holds the number of affected entities.
type Change struct {
	Collection string
	Op         Op
	ID         string
	Count      int
}

type state struct {
	materials     []entities.Material
	budgets       []entities.Budget
	obras         []entities.Obra
	visitas       []entities.Visita
	concursos     []entities.Concurso
	users         []entities.User
	conversations []entities.Conversation
	messages      []entities.Message
	notifications []entities.Notification
	invitations   []entities.Invitation
}

// Store is constructed once at process start and handed to every component
// that needs it. All collections share one lock so snapshots are consistent.
type Store struct {
	mu    sync.RWMutex
	state state

	subsMu      sync.RWMutex
	subscribers []func(Change)

	materials     *Collection[entities.Material]
	budgets       *Collection[entities.Budget]
	obras         *Collection[entities.Obra]
	visitas       *Collection[entities.Visita]
	concursos     *Collection[entities.Concurso]
	users         *Collection[entities.User]
	conversations *Collection[entities.Conversation]
	messages      *Collection[entities.Message]
	notifications *Collection[entities.Notification]
	invitations   *Collection[entities.Invitation]
}

var (
	_ interfaces.IMaterialRepository     = (*Collection[entities.Material])(nil)
	_ interfaces.INotificationRepository = (*Collection[entities.Notification])(nil)
)

// New returns an empty store. Call Seed to load the built-in data set.
func New() *Store {
	s := &Store{}
	s.materials = newCollection(s, CollectionMaterials, &s.state.materials)
	s.budgets = newCollection(s, CollectionBudgets, &s.state.budgets)
	s.obras = newCollection(s, CollectionObras, &s.state.obras)
	s.visitas = newCollection(s, CollectionVisitas, &s.state.visitas)
	s.concursos = newCollection(s, CollectionConcursos, &s.state.concursos)
	s.users = newCollection(s, CollectionUsers, &s.state.users)
	s.conversations = newCollection(s, CollectionConversations, &s.state.conversations)
	s.messages = newCollection(s, CollectionMessages, &s.state.messages)
	s.notifications = newCollection(s, CollectionNotifications, &s.state.notifications)
	s.invitations = newCollection(s, CollectionInvitations, &s.state.invitations)
	return s
}

// NewSeeded returns a store holding the built-in data set.
func NewSeeded() *Store {
	s := New()
	s.Seed()
	return s
}

func (s *Store) Materials() *Collection[entities.Material]         { return s.materials }
func (s *Store) Budgets() *Collection[entities.Budget]             { return s.budgets }
func (s *Store) Obras() *Collection[entities.Obra]                 { return s.obras }
func (s *Store) Visitas() *Collection[entities.Visita]             { return s.visitas }
func (s *Store) Concursos() *Collection[entities.Concurso]         { return s.concursos }
func (s *Store) Users() *Collection[entities.User]                 { return s.users }
func (s *Store) Conversations() *Collection[entities.Conversation] { return s.conversations }
func (s *Store) Messages() *Collection[entities.Message]           { return s.messages }
func (s *Store) Notifications() *Collection[entities.Notification] { return s.notifications }
func (s *Store) Invitations() *Collection[entities.Invitation]     { return s.invitations }

// Subscribe registers fn to be called after every successful mutation.
// Callbacks run outside the store lock, on the mutating goroutine.
func (s *Store) Subscribe(fn func(Change)) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) emit(c Change) {
	s.subsMu.RLock()
	subs := make([]func(Change), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subsMu.RUnlock()
	for _, fn := range subs {
		fn(c)
	}
}
