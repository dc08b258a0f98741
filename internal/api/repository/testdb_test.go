package repository

import (
	"context"
	"ctchen222/taskboard/internal/api/models"
	"ctchen222/taskboard/internal/db"
	"testing"

	"github.com/jmoiron/sqlx"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	pool, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// Every pooled connection to :memory: is a distinct database; keep one.
	pool.SetMaxOpenConns(1)
	t.Cleanup(func() { pool.Close() })

	if err := db.InitSchema(pool); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}
	return pool
}

func mustCreateUser(t *testing.T, repo UserRepository, username string) int64 {
	t.Helper()

	user := &models.User{Username: username}
	if err := repo.CreateUser(context.Background(), user, "secret-password"); err != nil {
		t.Fatalf("failed to create user %q: %v", username, err)
	}
	return user.ID
}
