package repository

import (
	"context"
	"errors"
	"sync"

	"taskloop/internal/domain/entities"
)

var ErrDuplicateID = errors.New("duplicate id")

// MemoryRepository keeps records in insertion order in process memory.
//
// It implements interfaces.IRepository for any entity and is the default
// store: optionally seeded with fixture data at start-up, lost on exit.
type MemoryRepository[T entities.Entity] struct {
	mu    sync.RWMutex
	items []T
}

func NewMemoryRepository[T entities.Entity](seed ...T) *MemoryRepository[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &MemoryRepository[T]{items: items}
}

func (r *MemoryRepository[T]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryRepository[T]) GetByID(_ context.Context, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.items[i], nil
	}
	var zero T
	return zero, nil
}

func (r *MemoryRepository[T]) Create(_ context.Context, e T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(e.EntityID()) >= 0 {
		var zero T
		return zero, ErrDuplicateID
	}
	r.items = append(r.items, e)
	return e, nil
}

func (r *MemoryRepository[T]) Update(_ context.Context, e T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(e.EntityID())
	if i < 0 {
		var zero T
		return zero, nil
	}
	r.items[i] = e
	return e, nil
}

func (r *MemoryRepository[T]) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return true, nil
}

func (r *MemoryRepository[T]) indexOf(id string) int {
	for i, it := range r.items {
		if it.EntityID() == id {
			return i
		}
	}
	return -1
}
