package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Open initializes the connection pool for the SQLite database at dbPath and
// returns a pointer to the sqlx.DB instance. The handle is meant to be passed
// into repositories rather than held globally.
func Open(dbPath string) (*sqlx.DB, error) {
	pool, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := pool.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// InitSchema enables foreign keys and creates the users and tasks tables if
// they don't exist. Username uniqueness is enforced here, at the storage
// layer, so concurrent registrations cannot race past an application check.
func InitSchema(pool *sqlx.DB) error {
	if _, err := pool.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	userSchema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	);`

	if _, err := pool.Exec(userSchema); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	taskSchema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		task TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'todo'
	);`

	if _, err := pool.Exec(taskSchema); err != nil {
		return fmt.Errorf("failed to create tasks table: %w", err)
	}

	return nil
}
