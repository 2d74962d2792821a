// Package config resolves server and database configuration from the
// environment. Secrets and connection details come from env vars (optionally
// loaded from a .env file by the CLI); tuning values are fixed constants.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultListenAddr = ":8080"

	defaultPostgresHost     = "localhost"
	defaultPostgresPort     = "5432"
	defaultPostgresUser     = "library"
	defaultPostgresPassword = "library"
	defaultPostgresDatabase = "library"
)

// Server holds the HTTP listener configuration.
type Server struct {
	ListenAddr string
}

// ServerFromEnv reads the server configuration from the environment.
func ServerFromEnv() Server {
	return Server{
		ListenAddr: envOrDefault("LISTEN_ADDR", defaultListenAddr),
	}
}

// PostgresDSN builds the database DSN from the environment.
func PostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		envOrDefault("POSTGRES_USER", defaultPostgresUser),
		envOrDefault("POSTGRES_PASSWORD", defaultPostgresPassword),
		envOrDefault("POSTGRES_HOST", defaultPostgresHost),
		envOrDefault("POSTGRES_PORT", defaultPostgresPort),
		envOrDefault("POSTGRES_DB", defaultPostgresDatabase),
	)
}

// PostgresPGXPoolConfig creates a pgxpool.Config for the service database.
func PostgresPGXPoolConfig() (*pgxpool.Config, error) {
	const defaultMaxConnections = int32(8)
	const defaultMinConnections = int32(2)
	const defaultMaxConnLifetime = time.Hour
	const defaultMaxConnIdleTime = time.Minute * 5
	const defaultHealthCheckPeriod = time.Minute
	const defaultConnectTimeout = time.Second * 5

	dbConfig, err := pgxpool.ParseConfig(PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("parsing postgres config: %w", err)
	}

	dbConfig.MaxConns = defaultMaxConnections
	dbConfig.MinConns = defaultMinConnections
	dbConfig.MaxConnLifetime = defaultMaxConnLifetime
	dbConfig.MaxConnIdleTime = defaultMaxConnIdleTime
	dbConfig.HealthCheckPeriod = defaultHealthCheckPeriod
	dbConfig.ConnConfig.ConnectTimeout = defaultConnectTimeout

	return dbConfig, nil
}

func envOrDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
