package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrListNotFound indicates that problem list was not found
	ErrListNotFound = errors.New("list not found")

	// ErrTemplateNotFound indicates that problem catalog version does not exist
	ErrTemplateNotFound = errors.New("template not found")

	// ErrProblemNotFound indicates that problem is not in the list's catalog
	ErrProblemNotFound = errors.New("problem not found")

	// ErrAttemptNotFound indicates that attempt record was not found
	ErrAttemptNotFound = errors.New("attempt not found")
)
