package interfaces

import (
	"context"
	"errors"

	"moap_dashboard/internal/domain/entities"
)

var (
	ErrDuplicateID = errors.New("duplicate id")
	ErrEmptyID     = errors.New("empty id")
)

// IRepository abstracts one entity collection of the store.
//
// Absent ids are reported without an error: GetByID and Mutate return the zero
// value, Delete returns false. Collections keep insertion order.
type IRepository[T entities.Entity[T]] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	// Create refuses empty ids (ErrEmptyID) and ids already present (ErrDuplicateID).
	Create(ctx context.Context, e T) (T, error)
	// Mutate applies fn to the stored entity under the store lock. fn must not
	// change the id.
	Mutate(ctx context.Context, id string, fn func(*T)) (T, error)
	// MutateAll applies fn to every entity and returns how many fn reported as
	// changed.
	MutateAll(ctx context.Context, fn func(*T) bool) (int, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) (int, error)
}

type (
	IMaterialRepository     = IRepository[entities.Material]
	IBudgetRepository       = IRepository[entities.Budget]
	IObraRepository         = IRepository[entities.Obra]
	IVisitaRepository       = IRepository[entities.Visita]
	IConcursoRepository     = IRepository[entities.Concurso]
	IUserRepository         = IRepository[entities.User]
	IConversationRepository = IRepository[entities.Conversation]
	IMessageRepository      = IRepository[entities.Message]
	INotificationRepository = IRepository[entities.Notification]
	IInvitationRepository   = IRepository[entities.Invitation]
)
