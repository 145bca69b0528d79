// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageMemory   = "memory"
	StorageSnapshot = "snapshot"
	StorageDynamoDB = "dynamodb"
)

type AWS struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type Tables struct {
	Clients  string
	Quotes   string
	Jobs     string
	Requests string
	Invoices string
	Payments string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Config struct {
	Port             string
	GinMode          string
	StorageDriver    string
	SeedFixtures     bool
	LogLevel         string
	LogFormat        string
	CalendarTimezone string
	CORSOrigins      []string

	AWS    AWS
	Tables Tables
	Redis  Redis

	SnapshotKeyPrefix string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
}

// Load reads the configuration. Unset variables fall back to local-friendly
// defaults; malformed ones are reported.
func Load() (Config, error) {
	cfg := Config{
		Port:             getenvDefault("PORT", "8080"),
		GinMode:          os.Getenv("GIN_MODE"),
		StorageDriver:    strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageMemory)),
		SeedFixtures:     getenvBool("SEED_FIXTURES", true),
		LogLevel:         getenvDefault("LOG_LEVEL", "info"),
		LogFormat:        getenvDefault("LOG_FORMAT", "json"),
		CalendarTimezone: getenvDefault("CALENDAR_TIMEZONE", "UTC"),
		CORSOrigins:      splitAndTrim(os.Getenv("CORS_ALLOWED_ORIGINS")),
		AWS: AWS{
			Region:           getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:      getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		},
		Tables: Tables{
			Clients:  getenvDefault("CLIENTS_TABLE", "clients"),
			Quotes:   getenvDefault("QUOTES_TABLE", "quotes"),
			Jobs:     getenvDefault("JOBS_TABLE", "jobs"),
			Requests: getenvDefault("REQUESTS_TABLE", "requests"),
			Invoices: getenvDefault("INVOICES_TABLE", "invoices"),
			Payments: getenvDefault("PAYMENTS_TABLE", "payments"),
		},
		Redis: Redis{
			Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		SnapshotKeyPrefix:      getenvDefault("SNAPSHOT_KEY_PREFIX", "taskloop:"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     getenvBool("PAYMENT_GATEWAY_MOCK", false) || getenvBool("MERCADOPAGO_MOCK", false),
	}

	switch cfg.StorageDriver {
	case StorageMemory, StorageSnapshot, StorageDynamoDB:
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil || db < 0 {
			return Config{}, fmt.Errorf("invalid REDIS_DB %q", v)
		}
		cfg.Redis.DB = db
	}

	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Location resolves CALENDAR_TIMEZONE.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.CalendarTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid CALENDAR_TIMEZONE %q: %w", c.CalendarTimezone, err)
	}
	return loc, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "":
		return def
	case "1", "true", "yes", "on", "mock":
		return true
	default:
		return false
	}
}

func splitAndTrim(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
