package repository

import (
	"context"

	"travel-journal-server/internal/models"

	"github.com/google/uuid"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	// Create inserts a new user; returns models.ErrEmailAlreadyExists when the
	// email is taken.
	Create(ctx context.Context, user *models.User) error
	// GetByEmail returns models.ErrUserNotFound when no account matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByID returns models.ErrUserNotFound when no account matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
