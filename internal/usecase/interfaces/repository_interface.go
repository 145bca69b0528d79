package interfaces

import (
	"context"

	"taskloop/internal/domain/entities"
)

// IRepository is the persistence port shared by every entity store.
//
// Lookups follow one convention: a missing record is reported as the zero
// value with a nil error, and callers check the ID.
//   - GetByID: zero value when the id is unknown
//   - Update: replaces the whole record; zero value when the id is unknown
//   - Delete: reports whether a record was removed

type IRepository[T entities.Entity] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, e T) (T, error)
	Update(ctx context.Context, e T) (T, error)
	Delete(ctx context.Context, id string) (bool, error)
}
