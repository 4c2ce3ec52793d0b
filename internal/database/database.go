// Package database implement connection to database service and initialize ORM.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	// Pure Go SQLite driver, registered as "sqlite"
	_ "modernc.org/sqlite"

	"cargo-backend/internal/config"
	"cargo-backend/internal/logging"
	"cargo-backend/internal/model"
)

// Dialect names the database engine behind a connection string.
type Dialect string

const (
	// DialectSQLite is the default local file store
	DialectSQLite Dialect = "sqlite"
	// DialectPostgres is the server-based store
	DialectPostgres Dialect = "postgres"
)

// DBinstanceStruct is a struct that holds the GORM DB instance and related information.
type DBinstanceStruct struct {
	*gorm.DB
	// Config
	Config  *config.Config
	Dialect Dialect
	Log     *logrus.Logger
	// cached raw DB and mutex for lazy-init
	sqlDB *sql.DB
	mu    sync.RWMutex
}

// ParseURL maps a connection string to a dialect and a DSN the driver accepts.
// Accepted forms:
//
//	sqlite+aiosqlite:///./77cargo.db, sqlite:///path.db, sqlite://:memory:, file:x.db, x.db
//	postgres://..., postgresql://..., postgresql+asyncpg://...
func ParseURL(raw string) (Dialect, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", errors.New("database url is empty")
	}

	scheme, rest, hasScheme := strings.Cut(raw, "://")
	if !hasScheme {
		// libpq keyword/value form: host=... port=... user=...
		if strings.Contains(raw, "host=") && strings.Contains(raw, "dbname=") {
			return DialectPostgres, raw, nil
		}
		// plain path or sqlite file: URI
		return DialectSQLite, withSQLitePragmas(raw), nil
	}

	// drop driver suffix like +aiosqlite / +asyncpg
	base, _, _ := strings.Cut(strings.ToLower(scheme), "+")

	switch base {
	case "sqlite", "sqlite3":
		path := rest
		// sqlite:///relative.db and sqlite:////abs.db both keep one slash as the root marker
		if strings.HasPrefix(path, "/") {
			path = path[1:]
		}
		if path == "" {
			return "", "", fmt.Errorf("sqlite url %q has no path", raw)
		}
		return DialectSQLite, withSQLitePragmas(path), nil
	case "postgres", "postgresql":
		u, err := url.Parse("postgres://" + rest)
		if err != nil {
			return "", "", fmt.Errorf("invalid postgres url: %w", err)
		}
		return DialectPostgres, u.String(), nil
	default:
		return "", "", fmt.Errorf("unsupported database scheme %q", scheme)
	}
}

func withSQLitePragmas(dsn string) string {
	if dsn == ":memory:" {
		dsn = "file::memory:"
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_time_format=sqlite"
}

// NewDBInstance creates a new DBinstanceStruct with the given configuration.
// It establishes a connection to the database, migrates the schema and returns
// the instance or an error if any step fails.
func NewDBInstance(cfg *config.Config, log *logrus.Logger) (*DBinstanceStruct, error) {
	dialect, dsn, err := ParseURL(cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch dialect {
	case DialectPostgres:
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn})
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logging.NewGormLogger(log),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialect, err)
	}

	if gin.IsDebugging() {
		gdb = gdb.Debug()
	}

	newDb := &DBinstanceStruct{
		DB:      gdb,
		Config:  cfg,
		Dialect: dialect,
		Log:     log,
	}

	raw, err := newDb.Raw()
	if err != nil {
		return nil, err
	}
	if dialect == DialectSQLite {
		// SQLite allows a single writer, and an in-memory database lives only
		// as long as its connection.
		raw.SetMaxOpenConns(1)
		raw.SetMaxIdleConns(1)
		raw.SetConnMaxLifetime(0)
	} else {
		raw.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		raw.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		raw.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	if err := newDb.Migrate(); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.WithFields(logrus.Fields{"dialect": dialect}).Info("database ready")
	return newDb, nil
}

// Raw returns the underlying *sql.DB, caching it after the first successful retrieval.
// It is safe for concurrent use.
func (d *DBinstanceStruct) Raw() (*sql.DB, error) {
	if d == nil {
		return nil, fmt.Errorf("DBinstanceStruct is nil")
	}

	// fast path: cached value
	d.mu.RLock()
	if d.sqlDB != nil {
		raw := d.sqlDB
		d.mu.RUnlock()
		return raw, nil
	}
	d.mu.RUnlock()

	// slow path: initialize
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sqlDB != nil {
		return d.sqlDB, nil
	}
	if d.DB == nil {
		return nil, fmt.Errorf("gorm DB is nil")
	}
	raw, err := d.DB.DB()
	if err != nil {
		return nil, err
	}
	d.sqlDB = raw
	return raw, nil
}

// Migrate creates missing tables, columns and indexes. Existing data is never
// altered.
func (d *DBinstanceStruct) Migrate() error {
	return d.AutoMigrate(model.MigrateAble...)
}

// UnitOfWork runs fn inside one transaction bound to ctx. The transaction is
// committed when fn returns nil and rolled back when it returns an error or
// panics; the connection is released on every path.
func (d *DBinstanceStruct) UnitOfWork(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.WithContext(ctx).Transaction(fn)
}

// Health checks the health of the database connection by pinging the database.
// It returns a map with keys indicating various health statistics.
func (d *DBinstanceStruct) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	oriDB, err := d.Raw()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		d.Log.WithError(err).Error("db down")
		return stats
	}

	// Ping the database
	err = oriDB.PingContext(ctx)
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		d.Log.WithError(err).Error("db down")
		return stats
	}

	// Database is up, add more statistics
	stats["status"] = "up"
	stats["message"] = "It's healthy"
	stats["dialect"] = string(d.Dialect)

	dbStats := oriDB.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()
	stats["max_idle_closed"] = strconv.FormatInt(dbStats.MaxIdleClosed, 10)
	stats["max_lifetime_closed"] = strconv.FormatInt(dbStats.MaxLifetimeClosed, 10)

	if dbStats.MaxOpenConnections > 0 && dbStats.OpenConnections > dbStats.MaxOpenConnections*4/5 {
		stats["message"] = "The database is experiencing heavy load."
	}

	if dbStats.WaitCount > 1000 {
		stats["message"] = "The database has a high number of wait events, indicating potential bottlenecks."
	}

	return stats
}

// Close closes the database connection.
func (d *DBinstanceStruct) Close() error {
	oriDB, err := d.Raw()
	if err != nil {
		return err
	}
	d.Log.WithField("dialect", d.Dialect).Info("disconnected from database")
	return oriDB.Close()
}

// ErrorFields describes a persistence error for structured logs. Postgres
// errors carry their SQLSTATE code and constraint.
func ErrorFields(err error) logrus.Fields {
	fields := logrus.Fields{"error": err.Error()}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		fields["pg_code"] = pgErr.Code
		if pgErr.ConstraintName != "" {
			fields["pg_constraint"] = pgErr.ConstraintName
		}
	}
	if errors.Is(err, context.Canceled) {
		fields["canceled"] = true
	}
	return fields
}
