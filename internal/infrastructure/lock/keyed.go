// Package lock provides process-local locks keyed by string.
package lock

import (
	"context"
	"sync"
)

// Keyed hands out one mutex per key. Mutexes are never reclaimed; keys are
// expected to come from a bounded set of entity ids.
type Keyed struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyed() *Keyed {
	return &Keyed{locks: map[string]*sync.Mutex{}}
}

// Lock blocks until key is free. The returned func releases it.
func (k *Keyed) Lock(_ context.Context, key string) (func(), error) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock, nil
}
