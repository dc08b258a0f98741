package service

import (
	"context"
	"ctchen222/taskboard/internal/api/models"
	"ctchen222/taskboard/internal/api/repository"
	"sort"

	"golang.org/x/crypto/bcrypt"
)

// In-memory stand-ins for the sqlite repositories. They mirror the real
// ownership-scoping behavior: mutations match on both task id and owner id.

type fakeUserRepo struct {
	nextID int64
	users  map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User, password string) error {
	if _, exists := f.users[user.Username]; exists {
		return repository.ErrDuplicateUsername
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	f.nextID++
	user.ID = f.nextID
	user.PasswordHash = string(hash)
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

type fakeTaskRepo struct {
	nextID int64
	tasks  map[int64]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[int64]*models.Task)}
}

func (f *fakeTaskRepo) ListByOwner(_ context.Context, ownerID int64) ([]models.Task, error) {
	out := []models.Task{}
	for _, task := range f.tasks {
		if task.OwnerID == ownerID {
			out = append(out, *task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTaskRepo) Create(_ context.Context, ownerID int64, text string, status models.Status) (int64, error) {
	f.nextID++
	f.tasks[f.nextID] = &models.Task{ID: f.nextID, OwnerID: ownerID, Text: text, Status: status}
	return f.nextID, nil
}

func (f *fakeTaskRepo) UpdateStatus(_ context.Context, ownerID, taskID int64, status models.Status) (bool, error) {
	task, ok := f.tasks[taskID]
	if !ok || task.OwnerID != ownerID {
		return false, nil
	}
	task.Status = status
	return true, nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, ownerID, taskID int64) (bool, error) {
	task, ok := f.tasks[taskID]
	if !ok || task.OwnerID != ownerID {
		return false, nil
	}
	delete(f.tasks, taskID)
	return true, nil
}

func (f *fakeTaskRepo) DeleteByStatus(_ context.Context, ownerID int64, status models.Status) error {
	for id, task := range f.tasks {
		if task.OwnerID == ownerID && task.Status == status {
			delete(f.tasks, id)
		}
	}
	return nil
}
