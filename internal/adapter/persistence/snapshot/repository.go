package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"taskloop/internal/adapter/persistence/repository"
	"taskloop/internal/domain/entities"
	"taskloop/internal/infrastructure/logging"
)

// Repository persists a whole entity list as one JSON array under a fixed
// key. Every read loads the full array; every write loads, mutates and saves
// it back while holding the key's lock. There is no schema versioning: an
// unreadable snapshot is reported as an error, never rewritten.
type Repository[T entities.Entity] struct {
	store Store
	key   string
}

func NewRepository[T entities.Entity](store Store, key string) *Repository[T] {
	return &Repository[T]{store: store, key: key}
}

// Seed writes items only when no snapshot exists yet.
func (r *Repository[T]) Seed(ctx context.Context, items ...T) error {
	unlock, err := r.store.Lock(ctx, r.key)
	if err != nil {
		return err
	}
	defer unlock()

	_, found, err := r.store.Load(ctx, r.key)
	if err != nil || found {
		return err
	}
	return r.save(ctx, items)
}

func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	return r.load(ctx)
}

func (r *Repository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	items, err := r.load(ctx)
	if err != nil {
		return zero, err
	}
	for _, it := range items {
		if it.EntityID() == id {
			return it, nil
		}
	}
	return zero, nil
}

func (r *Repository[T]) Create(ctx context.Context, e T) (T, error) {
	var zero T
	err := r.mutate(ctx, func(items []T) ([]T, error) {
		for _, it := range items {
			if it.EntityID() == e.EntityID() {
				return nil, fmt.Errorf("%s: %w", r.key, repository.ErrDuplicateID)
			}
		}
		return append(items, e), nil
	})
	if err != nil {
		return zero, err
	}
	return e, nil
}

func (r *Repository[T]) Update(ctx context.Context, e T) (T, error) {
	var zero T
	found := false
	err := r.mutate(ctx, func(items []T) ([]T, error) {
		for i, it := range items {
			if it.EntityID() == e.EntityID() {
				items[i] = e
				found = true
				return items, nil
			}
		}
		return nil, nil
	})
	if err != nil || !found {
		return zero, err
	}
	return e, nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) (bool, error) {
	removed := false
	err := r.mutate(ctx, func(items []T) ([]T, error) {
		for i, it := range items {
			if it.EntityID() == id {
				removed = true
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, nil
	})
	return removed, err
}

// mutate runs fn on the current list under the lock. A nil list from fn
// means nothing changed and skips the write.
func (r *Repository[T]) mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	unlock, err := r.store.Lock(ctx, r.key)
	if err != nil {
		logging.LogError("snapshot", "mutate", "obtain lock", r.key, err)
		return err
	}
	defer unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil || next == nil {
		return err
	}
	return r.save(ctx, next)
}

func (r *Repository[T]) load(ctx context.Context) ([]T, error) {
	raw, found, err := r.store.Load(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", r.key, err)
	}
	items := []T{}
	if !found {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", r.key, err)
	}
	return items, nil
}

func (r *Repository[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := r.store.Save(ctx, r.key, raw); err != nil {
		return fmt.Errorf("save snapshot %s: %w", r.key, err)
	}
	return nil
}
