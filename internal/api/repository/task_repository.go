package repository

import (
	"context"
	"ctchen222/taskboard/internal/api/models"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// TaskRepository defines the interface for task data operations. Every method
// takes the owner id and scopes its SQL to it; a task is never visible or
// mutable through any other user's id.
type TaskRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Task, error)
	Create(ctx context.Context, ownerID int64, text string, status models.Status) (int64, error)
	UpdateStatus(ctx context.Context, ownerID, taskID int64, status models.Status) (bool, error)
	Delete(ctx context.Context, ownerID, taskID int64) (bool, error)
	DeleteByStatus(ctx context.Context, ownerID int64, status models.Status) error
}

type sqliteTaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new SQLite-based TaskRepository.
func NewTaskRepository(db *sqlx.DB) TaskRepository {
	return &sqliteTaskRepository{db: db}
}

// ListByOwner returns the owner's tasks in insertion order.
func (r *sqliteTaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Task, error) {
	tasks := []models.Task{}
	query := `SELECT id, user_id, task, status FROM tasks WHERE user_id = ? ORDER BY id`
	if err := r.db.SelectContext(ctx, &tasks, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Create inserts a task for the owner and returns its id.
func (r *sqliteTaskRepository) Create(ctx context.Context, ownerID int64, text string, status models.Status) (int64, error) {
	query := `INSERT INTO tasks (user_id, task, status) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, ownerID, text, status)
	if err != nil {
		return 0, fmt.Errorf("failed to create task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new task id: %w", err)
	}
	return id, nil
}

// UpdateStatus moves a task to the given column. It reports false when no row
// matched, which covers both a missing task and a task owned by someone else;
// callers cannot tell the two apart.
func (r *sqliteTaskRepository) UpdateStatus(ctx context.Context, ownerID, taskID int64, status models.Status) (bool, error) {
	query := `UPDATE tasks SET status = ? WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, status, taskID, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to update task status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a task, subject to the same ownership scoping as UpdateStatus.
func (r *sqliteTaskRepository) Delete(ctx context.Context, ownerID, taskID int64) (bool, error) {
	query := `DELETE FROM tasks WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, taskID, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// DeleteByStatus clears one of the owner's columns. An empty column is a no-op.
func (r *sqliteTaskRepository) DeleteByStatus(ctx context.Context, ownerID int64, status models.Status) error {
	query := `DELETE FROM tasks WHERE user_id = ? AND status = ?`
	if _, err := r.db.ExecContext(ctx, query, ownerID, status); err != nil {
		return fmt.Errorf("failed to clear column: %w", err)
	}
	return nil
}
