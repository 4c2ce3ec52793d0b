package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	// Register the "postgres" driver for raw schema checks
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"gorm.io/gorm"

	"cargo-backend/internal/model"
)

func TestParseURL(t *testing.T) {
	cases := []struct {
		raw     string
		dialect Dialect
		prefix  string
	}{
		{"sqlite+aiosqlite:///./77cargo.db", DialectSQLite, "./77cargo.db?"},
		{"sqlite:////var/lib/cargo.db", DialectSQLite, "/var/lib/cargo.db?"},
		{"sqlite://:memory:", DialectSQLite, "file::memory:?"},
		{"cargo.db", DialectSQLite, "cargo.db?"},
		{"file:x?mode=memory", DialectSQLite, "file:x?mode=memory&"},
		{"postgresql+asyncpg://u:p@db:5432/cargo", DialectPostgres, "postgres://u:p@db:5432/cargo"},
		{"postgres://u:p@db:5432/cargo?sslmode=disable", DialectPostgres, "postgres://u:p@db:5432/cargo?sslmode=disable"},
		{"host=db port=5432 user=u password=p dbname=cargo", DialectPostgres, "host=db"},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			dialect, dsn, err := ParseURL(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.dialect, dialect)
			assert.True(t, strings.HasPrefix(dsn, tc.prefix), "dsn %q should start with %q", dsn, tc.prefix)
		})
	}
}

func TestParseURL_Invalid(t *testing.T) {
	for _, raw := range []string{"", "mysql://u:p@h/db", "sqlite://"} {
		_, _, err := ParseURL(raw)
		assert.Error(t, err, raw)
	}
}

func TestNew(t *testing.T) {
	db := GetTestDB(t)
	assert.Equal(t, DialectSQLite, db.Dialect)
	assert.True(t, db.Migrator().HasTable(&model.JobApplication{}))
	assert.True(t, db.Migrator().HasTable(&model.ContactMessage{}))
}

func TestNew_FileStore(t *testing.T) {
	cfg := TestConfig()
	cfg.Database.URL = "sqlite:///" + filepath.Join(t.TempDir(), "cargo.db")

	db, err := NewDBInstance(cfg, TestLogger())
	require.NoError(t, err)

	row := model.NewContactMessage(model.ContactMessageCreate{FirstName: "Ana", Email: "ana@x.com", Message: "hi"})
	require.NoError(t, db.Create(&row).Error)
	require.NoError(t, db.Close())

	// reopening keeps the data and migrating again is a no-op
	db, err = NewDBInstance(cfg, TestLogger())
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int64
	require.NoError(t, db.Model(&model.ContactMessage{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestHealth(t *testing.T) {
	db := GetTestDB(t)
	stats := db.Health()

	if stats["status"] != "up" {
		t.Fatalf("expected status to be up, got %s", stats["status"])
	}

	if _, ok := stats["error"]; ok {
		t.Fatalf("expected error not to be present")
	}

	assert.Equal(t, "It's healthy", stats["message"])
	assert.Equal(t, "sqlite", stats["dialect"])
}

func TestClose(t *testing.T) {
	db, err := NewDBInstance(TestConfig(), TestLogger())
	require.NoError(t, err)

	if db.Close() != nil {
		t.Fatalf("expected Close() to return nil")
	}

	assert.Equal(t, "down", db.Health()["status"])
}

func TestUnitOfWork_Commit(t *testing.T) {
	db := GetTestDB(t)

	err := db.UnitOfWork(context.Background(), func(tx *gorm.DB) error {
		row := model.NewContactMessage(model.ContactMessageCreate{FirstName: "A", Email: "a@x.com", Message: "m"})
		return tx.Create(&row).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.ContactMessage{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUnitOfWork_RollbackOnError(t *testing.T) {
	db := GetTestDB(t)
	sentinel := errors.New("stop")

	err := db.UnitOfWork(context.Background(), func(tx *gorm.DB) error {
		row := model.NewContactMessage(model.ContactMessageCreate{FirstName: "A", Email: "a@x.com", Message: "m"})
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	var count int64
	require.NoError(t, db.Model(&model.ContactMessage{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestUnitOfWork_RollbackOnPanic(t *testing.T) {
	db := GetTestDB(t)

	assert.Panics(t, func() {
		_ = db.UnitOfWork(context.Background(), func(tx *gorm.DB) error {
			row := model.NewContactMessage(model.ContactMessageCreate{FirstName: "A", Email: "a@x.com", Message: "m"})
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			panic("boom")
		})
	})

	// the connection was released, so the next query does not block
	var count int64
	require.NoError(t, db.Model(&model.ContactMessage{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestTimestampsAreUTCAndOrdered(t *testing.T) {
	db := GetTestDB(t)

	first := model.NewJobApplication(model.JobApplicationCreate{FirstName: "A", LastName: "A", Email: "a@x.com", Phone: "1234567890"})
	require.NoError(t, db.Create(&first).Error)
	time.Sleep(2 * time.Millisecond)
	second := model.NewJobApplication(model.JobApplicationCreate{FirstName: "B", LastName: "B", Email: "b@x.com", Phone: "1234567890"})
	require.NoError(t, db.Create(&second).Error)

	var rows []model.JobApplication
	require.NoError(t, db.Order("created_at DESC").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, second.ID, rows[0].ID)
	assert.WithinDuration(t, second.CreatedAt, rows[0].CreatedAt, time.Millisecond)
	assert.Equal(t, time.UTC, second.CreatedAt.Location())
	assert.Nil(t, rows[0].UpdatedAt)
	assert.Equal(t, model.ApplicationStatusPending, rows[0].Status)
}

func TestErrorFields(t *testing.T) {
	fields := ErrorFields(&pgconn.PgError{Code: "23505", ConstraintName: "uni_email", Message: "duplicate"})
	assert.Equal(t, "23505", fields["pg_code"])
	assert.Equal(t, "uni_email", fields["pg_constraint"])

	fields = ErrorFields(context.Canceled)
	assert.Equal(t, true, fields["canceled"])
	assert.NotContains(t, fields, "pg_code")
}

func TestPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	teardown, dsn, err := StartTestPostgres(ctx)
	if teardown != nil {
		defer func() { _ = teardown(context.Background()) }()
	}
	require.NoError(t, err)

	cfg := TestConfig()
	cfg.Database.URL = dsn

	db, err := NewDBInstance(cfg, TestLogger())
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	assert.Equal(t, DialectPostgres, db.Dialect)
	assert.Equal(t, "up", db.Health()["status"])

	err = db.UnitOfWork(ctx, func(tx *gorm.DB) error {
		row := model.NewJobApplication(model.JobApplicationCreate{FirstName: "P", LastName: "G", Email: "pg@x.com", Phone: "1234567890"})
		return tx.Create(&row).Error
	})
	require.NoError(t, err)

	raw, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer func() { _ = raw.Close() }()

	var tables int
	require.NoError(t, raw.QueryRowContext(ctx,
		`SELECT count(*) FROM information_schema.tables WHERE table_schema = 'public' AND table_name IN ('job_applications', 'contact_messages')`,
	).Scan(&tables))
	assert.Equal(t, 2, tables)

	var status string
	require.NoError(t, raw.QueryRowContext(ctx, `SELECT status FROM job_applications LIMIT 1`).Scan(&status))
	assert.Equal(t, "pending", status)
}
