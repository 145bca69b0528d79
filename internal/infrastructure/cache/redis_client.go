package cache

import (
	"context"
	"fmt"
	"time"

	"taskloop/internal/infrastructure/logging"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

const maxConnectAttempts = 5

// ConnectRedis opens a client and pings it, backing off between attempts.
func ConnectRedis(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
		PoolSize: 20,
	})

	var err error
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		if err = rdb.Ping(ctx).Err(); err == nil {
			logging.For("cache", "connect").WithFields(logrus.Fields{
				"addr":    opts.Addr,
				"attempt": attempt,
			}).Info("connected to redis")
			return rdb, nil
		}

		sleep := time.Second * time.Duration(1<<min(attempt, 4))
		logging.For("cache", "connect").WithFields(logrus.Fields{
			"addr":    opts.Addr,
			"attempt": attempt,
			"retry":   sleep.String(),
		}).Warn("failed to connect redis: " + err.Error())

		select {
		case <-ctx.Done():
			_ = rdb.Close()
			return nil, ctx.Err()
		case <-time.After(sleep):
		}
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("connect redis %s: %w", opts.Addr, err)
}
