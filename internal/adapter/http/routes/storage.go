package routes

import (
	"context"
	"fmt"
	"time"

	"taskloop/internal/adapter/persistence/repository"
	"taskloop/internal/adapter/persistence/snapshot"
	"taskloop/internal/domain/entities"
	"taskloop/internal/infrastructure/cache"
	"taskloop/internal/infrastructure/config"
	"taskloop/internal/infrastructure/database"
	"taskloop/internal/infrastructure/lock"
	"taskloop/internal/infrastructure/logging"
	"taskloop/internal/usecase/interfaces"
)

// Storage is the set of repositories the use cases run on.
type Storage struct {
	Clients  interfaces.IClientRepository
	Quotes   interfaces.IQuoteRepository
	Jobs     interfaces.IJobRepository
	Requests interfaces.IRequestRepository
	Invoices interfaces.IInvoiceRepository
	Payments interfaces.IInvoicePaymentRepository

	// PaymentLocks serializes payments per invoice. Snapshot storage locks in
	// redis so several API processes share it.
	PaymentLocks interfaces.IInvoiceLocker

	close func() error
}

func (s Storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStorage builds the repositories for cfg.StorageDriver and loads the
// demo fixtures when enabled.
func OpenStorage(ctx context.Context, cfg config.Config) (Storage, error) {
	log := logging.For("storage", "open").WithField("driver", cfg.StorageDriver)
	var fx repository.Fixtures
	if cfg.SeedFixtures {
		fx = repository.NewFixtures(time.Now())
	}

	switch cfg.StorageDriver {
	case config.StorageMemory:
		log.Info("using in-memory storage")
		return NewMemoryStorage(fx), nil

	case config.StorageSnapshot:
		rdb, err := cache.ConnectRedis(ctx, cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return Storage{}, fmt.Errorf("connect redis: %w", err)
		}
		s, err := NewSnapshotStorage(ctx, snapshot.NewRedisStore(rdb), cfg.SnapshotKeyPrefix, fx)
		if err != nil {
			_ = rdb.Close()
			return Storage{}, err
		}
		s.close = rdb.Close
		log.WithField("redis_addr", cfg.Redis.Addr).Info("using redis snapshot storage")
		return s, nil

	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:          cfg.AWS.Region,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			Endpoint:        cfg.AWS.DynamoDBEndpoint,
		})
		if err != nil {
			return Storage{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		if cfg.SeedFixtures {
			log.Info("fixtures are not loaded into dynamodb tables")
		}
		log.Info("using dynamodb storage")
		return Storage{
			Clients:  repository.NewClientDynamoRepository(ddb, cfg.Tables.Clients),
			Quotes:   repository.NewQuoteDynamoRepository(ddb, cfg.Tables.Quotes),
			Jobs:     repository.NewJobDynamoRepository(ddb, cfg.Tables.Jobs),
			Requests: repository.NewRequestDynamoRepository(ddb, cfg.Tables.Requests),
			Invoices: repository.NewInvoiceDynamoRepository(ddb, cfg.Tables.Invoices),
			Payments: repository.NewInvoicePaymentDynamoRepository(ddb, cfg.Tables.Payments),

			PaymentLocks: lock.NewKeyed(),
		}, nil
	}
	return Storage{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

func NewMemoryStorage(fx repository.Fixtures) Storage {
	return Storage{
		Clients:  repository.NewMemoryRepository(fx.Clients...),
		Quotes:   repository.NewMemoryRepository(fx.Quotes...),
		Jobs:     repository.NewMemoryRepository(fx.Jobs...),
		Requests: repository.NewMemoryRepository(fx.Requests...),
		Invoices: repository.NewMemoryRepository(fx.Invoices...),
		Payments: repository.NewInvoicePaymentMemoryRepository(),

		PaymentLocks: lock.NewKeyed(),
	}
}

// NewSnapshotStorage keeps jobs, requests and invoices in the snapshot store;
// clients, quotes and payments stay in process memory. Fixtures only fill
// snapshots that do not exist yet.
func NewSnapshotStorage(ctx context.Context, store snapshot.Store, prefix string, fx repository.Fixtures) (Storage, error) {
	jobs := snapshot.NewRepository[entities.Job](store, prefix+"jobs")
	requests := snapshot.NewRepository[entities.Request](store, prefix+"requests")
	invoices := snapshot.NewRepository[entities.Invoice](store, prefix+"invoices")

	if err := jobs.Seed(ctx, fx.Jobs...); err != nil {
		return Storage{}, fmt.Errorf("seed jobs snapshot: %w", err)
	}
	if err := requests.Seed(ctx, fx.Requests...); err != nil {
		return Storage{}, fmt.Errorf("seed requests snapshot: %w", err)
	}
	if err := invoices.Seed(ctx, fx.Invoices...); err != nil {
		return Storage{}, fmt.Errorf("seed invoices snapshot: %w", err)
	}

	return Storage{
		Clients:  repository.NewMemoryRepository(fx.Clients...),
		Quotes:   repository.NewMemoryRepository(fx.Quotes...),
		Jobs:     jobs,
		Requests: requests,
		Invoices: invoices,
		Payments: repository.NewInvoicePaymentMemoryRepository(),

		PaymentLocks: store,
	}, nil
}
