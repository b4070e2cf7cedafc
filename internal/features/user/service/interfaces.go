package service

import (
	"context"

	"catsgram-backend/internal/features/user/models"
)

type UserService interface {
	Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, req models.UpdateUserRequest) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	// UserExists is the lookup posts use to check their author.
	UserExists(ctx context.Context, id int64) (bool, error)
}
