package database

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"cargo-backend/internal/config"
)

// TestConfig returns a config pointing at a private in-memory SQLite database.
func TestConfig() *config.Config {
	cfg := config.Default()
	cfg.Database.URL = fmt.Sprintf("file:test_%s?mode=memory&cache=shared", uuid.NewString())
	return cfg
}

// TestLogger returns a logger that discards output.
func TestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// GetTestDB opens an isolated, migrated in-memory database that is closed when
// the test ends.
func GetTestDB(t testing.TB) *DBinstanceStruct {
	t.Helper()

	db, err := NewDBInstance(TestConfig(), TestLogger())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// StartTestPostgres starts a PostgreSQL test container and returns a teardown
// function and a postgres:// connection string for it.
func StartTestPostgres(ctx context.Context) (func(context.Context, ...testcontainers.TerminateOption) error, string, error) {
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, "", err
	}

	dbHost, err := dbContainer.Host(ctx)
	if err != nil {
		return dbContainer.Terminate, "", err
	}

	dbPort, err := dbContainer.MappedPort(ctx, nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, "", err
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPwd, dbHost, dbPort.Port(), dbName)
	return dbContainer.Terminate, dsn, nil
}
