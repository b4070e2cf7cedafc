package repository

import (
	"context"
	"errors"

	"catsgram-backend/internal/features/user/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository stores users. Implementations do not validate; the service
// serializes mutations and owns id assignment.
type UserRepository interface {
	// List returns all users ordered by id.
	List(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// NextID returns the current maximum id plus one, or 1 for an empty store.
	NextID(ctx context.Context) (int64, error)
	// Save inserts the user or replaces the stored record with the same id.
	Save(ctx context.Context, user *models.User) error
}
