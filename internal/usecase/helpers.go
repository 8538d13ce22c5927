package usecase

import (
	"context"
	"errors"
	"strings"

	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/domain/idgen"
	"moap_dashboard/internal/usecase/interfaces"
)

const maxIDAttempts = 3

// createWithFreshID inserts the entity built for a newly generated id. A
// duplicate id is retried with another one.
func createWithFreshID[T entities.Entity[T]](ctx context.Context, repo interfaces.IRepository[T], ids idgen.Generator, build func(id string) T) (T, error) {
	var zero T
	var err error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		var created T
		created, err = repo.Create(ctx, build(ids.NewID()))
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, interfaces.ErrDuplicateID) {
			return zero, err
		}
	}
	return zero, err
}

func normalizeID(id string) (string, bool) {
	id = strings.TrimSpace(id)
	return id, id != ""
}

func orDefault(ids idgen.Generator, clock idgen.Clock) (idgen.Generator, idgen.Clock) {
	if ids == nil {
		ids = idgen.UUIDGenerator{}
	}
	if clock == nil {
		clock = idgen.SystemClock{}
	}
	return ids, clock
}
