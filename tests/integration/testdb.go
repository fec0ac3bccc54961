// Package integration runs the repositories and the HTTP stack against real
// PostgreSQL and Redis instances started with testcontainers.
// The suites are skipped under -short.
package integration

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/loja/backend/internal/infrastructure/config"
	"github.com/loja/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage = "postgres:16-alpine"
	redisImage    = "redis:7-alpine"
)

var (
	// one postgres container per package run
	sharedPostgres   *tcpostgres.PostgresContainer
	sharedPostgresMu sync.Mutex
	sharedDBConfig   config.DatabaseConfig
)

// skipIfShort skips container-backed tests under -short
func skipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
}

// NewTestDatabase connects to the shared PostgreSQL container, migrating
// the schema on first use, and empties every table so each test starts clean.
func NewTestDatabase(t *testing.T) *persistence.Database {
	t.Helper()
	skipIfShort(t)

	cfg := postgresConfig(t)
	db, err := persistence.NewDatabase(&cfg)
	require.NoError(t, err, "Failed to connect to database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, persistence.AutoMigrate(db.DB), "Failed to migrate schema")
	cleanTables(t, db)
	return db
}

func postgresConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()

	sharedPostgresMu.Lock()
	defer sharedPostgresMu.Unlock()

	if sharedPostgres != nil {
		return sharedDBConfig
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		postgresImage,
		tcpostgres.WithDatabase("loja_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	sharedPostgres = container
	sharedDBConfig = config.DatabaseConfig{
		Driver:          config.DriverPostgres,
		Host:            host,
		Port:            port.Int(),
		User:            "postgres",
		Password:        "postgres",
		DBName:          "loja_test",
		SSLMode:         "disable",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5,
	}
	return sharedDBConfig
}

// cleanTables truncates the application tables, children first
func cleanTables(t *testing.T, db *persistence.Database) {
	t.Helper()
	for _, table := range []string{"sales", "products", "clients", "suppliers", "users"} {
		err := db.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error
		require.NoError(t, err, "Failed to truncate %s", table)
	}
}

// StartRedis starts a throwaway Redis container and returns its settings
func StartRedis(t *testing.T) config.RedisConfig {
	t.Helper()
	skipIfShort(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        redisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "Failed to start Redis container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: Failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	return config.RedisConfig{Host: host, Port: port.Int()}
}

// CleanupSharedContainer terminates the shared PostgreSQL container
func CleanupSharedContainer() {
	sharedPostgresMu.Lock()
	defer sharedPostgresMu.Unlock()

	if sharedPostgres != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = sharedPostgres.Terminate(ctx)
		sharedPostgres = nil
	}
}
