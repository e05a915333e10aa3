package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/sessionplan/internal/config"
	"github.com/akyairhashvil/sessionplan/internal/util"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the SQLite connection that stores projects, tasks and
// sessions.
type Database struct {
	DB     *sql.DB
	dbFile string
	now    func() time.Time
	newID  func() string
}

// Open connects to (and if needed creates) the database at path and brings
// the schema up to date.
func Open(ctx context.Context, path string) (*Database, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite allows a single writer; one connection keeps transactions simple.
	conn.SetMaxOpenConns(1)

	d := &Database{
		DB:     conn,
		dbFile: path,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
	if err := d.withDBContext(ctx, func(ctx context.Context) error {
		return conn.PingContext(ctx)
	}); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := d.createTables(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := d.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the connection.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the database file location.
func (d *Database) Path() string {
	return d.dbFile
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		created_at DATETIME NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		parent_id TEXT,
		title TEXT NOT NULL,
		priority TEXT NOT NULL DEFAULT 'medium',
		estimated_hours REAL,
		status TEXT NOT NULL DEFAULT 'todo',
		created_at DATETIME NOT NULL,
		completed_at DATETIME,
		FOREIGN KEY(project_id) REFERENCES projects(id) ON DELETE CASCADE,
		FOREIGN KEY(parent_id) REFERENCES tasks(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		scheduled_date TEXT NOT NULL,
		scheduled_hours REAL NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'scheduled',
		created_at DATETIME NOT NULL,
		FOREIGN KEY(project_id) REFERENCES projects(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS session_tasks (
		session_id TEXT NOT NULL,
		task_id TEXT NOT NULL,
		completed_at DATETIME NOT NULL,
		PRIMARY KEY(session_id, task_id),
		FOREIGN KEY(session_id) REFERENCES sessions(id) ON DELETE CASCADE,
		FOREIGN KEY(task_id) REFERENCES tasks(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT
	);`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project_status ON tasks(project_id, status);`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_parent ON tasks(parent_id);`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_project_date ON sessions(project_id, scheduled_date);`,
}

// migrations add columns introduced after the first release.
var migrations = []string{
	"ALTER TABLE sessions ADD COLUMN note TEXT",
	"ALTER TABLE sessions ADD COLUMN completed_at DATETIME",
}

func (d *Database) createTables(ctx context.Context) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		for _, query := range schema {
			if _, err := d.DB.ExecContext(ctx, query); err != nil {
				return fmt.Errorf("create schema: %w", err)
			}
		}
		return nil
	})
}

func (d *Database) migrate(ctx context.Context) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		for _, query := range migrations {
			if _, err := d.DB.ExecContext(ctx, query); err != nil && !isIgnorableMigrationErr(err) {
				return fmt.Errorf("migrate %q: %w", query, err)
			}
		}
		return nil
	})
}

func isIgnorableMigrationErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate column name")
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (d *Database) withDBContext(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := d.withTimeout(ctx, config.DBTimeout)
	defer cancel()
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := d.withTimeout(ctx, config.DBTimeout)
	defer cancel()
	return fn(ctx)
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		tx, err := d.DB.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if err := fn(tx); err != nil {
			return rollbackWithLog(tx, err)
		}
		return tx.Commit()
	})
}

func rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		util.LogError("rollback failed", rbErr)
	}
	return err
}
