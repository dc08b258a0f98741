package service

import "errors"

var (
	// ErrUsernameTaken signals a registration against an existing username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. The two cases are deliberately indistinguishable so login
	// cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmptyTask rejects task text that is empty or whitespace-only.
	ErrEmptyTask = errors.New("task required")

	// ErrInvalidStatus rejects a status outside todo/progress/done.
	ErrInvalidStatus = errors.New("unknown status")

	// ErrTaskNotFound covers both a missing task and a task owned by another
	// user. Merging the two avoids leaking which task ids exist.
	ErrTaskNotFound = errors.New("task not found")
)
