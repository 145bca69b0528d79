package snapshot

import (
	"context"
	"errors"
	"sync"
	"time"

	"taskloop/internal/infrastructure/lock"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

var ErrLockNotObtained = errors.New("could not obtain snapshot lock")

// Store holds whole-collection snapshots as opaque blobs under a key.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, data []byte) error
	// Lock serializes read-modify-write cycles on key. The returned func
	// releases the lock.
	Lock(ctx context.Context, key string) (func(), error)
}

const (
	defaultLockTTL   = 10 * time.Second
	defaultLockRetry = 50 * time.Millisecond
	lockWait         = 5 * time.Second
)

// RedisStore keeps snapshots as plain string values in Redis and guards
// writers with a redislock lock on "<key>:lock".
type RedisStore struct {
	rdb     *redis.Client
	locker  *redislock.Client
	lockTTL time.Duration
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, locker: redislock.New(rdb), lockTTL: defaultLockTTL}
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return val, true, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, data []byte) error {
	return s.rdb.Set(ctx, key, data, 0).Err()
}

func (s *RedisStore) Lock(ctx context.Context, key string) (func(), error) {
	waitCtx, cancel := context.WithTimeout(ctx, lockWait)
	defer cancel()

	held, err := s.locker.Obtain(waitCtx, key+":lock", s.lockTTL, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(defaultLockRetry),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ErrLockNotObtained
	}
	if err != nil {
		return nil, err
	}
	return func() {
		_ = held.Release(context.Background())
	}, nil
}

// MemoryStore is a process-local Store. It backs tests and local runs
// without Redis.
type MemoryStore struct {
	mu    sync.Mutex
	locks *lock.Keyed
	data  map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{locks: lock.NewKeyed(), data: map[string][]byte{}}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := make([]byte, len(data))
	copy(v, data)
	s.data[key] = v
	return nil
}

func (s *MemoryStore) Lock(ctx context.Context, key string) (func(), error) {
	return s.locks.Lock(ctx, key)
}
