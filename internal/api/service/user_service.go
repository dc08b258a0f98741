package service

import (
	"context"
	"ctchen222/taskboard/internal/api/models"
	"ctchen222/taskboard/internal/api/repository"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the username doesn't exist, so a failed
// login costs the same whether or not the account is real.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserService defines the interface for user-related business logic.
type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) error
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register handles user registration. Duplicate detection is left to the
// storage layer's UNIQUE constraint so concurrent registrations cannot race.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) error {
	user := &models.User{
		Username: req.Username,
	}

	err := s.userRepo.CreateUser(ctx, user, req.Password)
	if errors.Is(err, repository.ErrDuplicateUsername) {
		return ErrUsernameTaken
	}
	return err
}

// Login verifies the credentials and returns the matching user.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(req.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
