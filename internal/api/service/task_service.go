package service

import (
	"context"
	"ctchen222/taskboard/internal/api/models"
	"ctchen222/taskboard/internal/api/repository"
	"strings"
)

// TaskService defines the interface for task-related business logic. Every
// operation is scoped to the owner id resolved from the caller's session.
type TaskService interface {
	List(ctx context.Context, ownerID int64) ([]models.Task, error)
	Create(ctx context.Context, ownerID int64, text, status string) (int64, error)
	Move(ctx context.Context, ownerID, taskID int64, status string) error
	Delete(ctx context.Context, ownerID, taskID int64) error
	ClearColumn(ctx context.Context, ownerID int64, status string) error
}

type taskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo}
}

// List returns the owner's tasks in insertion order.
func (s *taskService) List(ctx context.Context, ownerID int64) ([]models.Task, error) {
	return s.taskRepo.ListByOwner(ctx, ownerID)
}

// Create adds a task. Blank text is rejected; an absent or unrecognized
// status falls back to todo, mirroring how the board treats new cards.
func (s *taskService) Create(ctx context.Context, ownerID int64, text, status string) (int64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, ErrEmptyTask
	}
	return s.taskRepo.Create(ctx, ownerID, text, models.StatusOrDefault(status))
}

// Move changes a task's column. Unlike Create, the status is validated
// strictly; writing an arbitrary string would strand the card off-board.
func (s *taskService) Move(ctx context.Context, ownerID, taskID int64, status string) error {
	st, ok := models.ParseStatus(status)
	if !ok {
		return ErrInvalidStatus
	}

	updated, err := s.taskRepo.UpdateStatus(ctx, ownerID, taskID, st)
	if err != nil {
		return err
	}
	if !updated {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a single task owned by the caller.
func (s *taskService) Delete(ctx context.Context, ownerID, taskID int64) error {
	deleted, err := s.taskRepo.Delete(ctx, ownerID, taskID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}

// ClearColumn bulk-deletes the caller's tasks in one column. Clearing an
// already-empty column succeeds.
func (s *taskService) ClearColumn(ctx context.Context, ownerID int64, status string) error {
	st, ok := models.ParseStatus(status)
	if !ok {
		return ErrInvalidStatus
	}
	return s.taskRepo.DeleteByStatus(ctx, ownerID, st)
}
