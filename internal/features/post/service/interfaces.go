package service

import (
	"context"

	"catsgram-backend/internal/features/post/models"
)

type PostService interface {
	Create(ctx context.Context, req models.CreatePostRequest) (*models.Post, error)
	Update(ctx context.Context, req models.UpdatePostRequest) (*models.Post, error)
	// FindByID returns nil without an error when no post has the id.
	FindByID(ctx context.Context, id int64) (*models.Post, error)
	FindAll(ctx context.Context, q models.ListQuery) ([]*models.Post, error)
}

// UserLookup answers whether a user exists. The user service satisfies it.
type UserLookup interface {
	UserExists(ctx context.Context, id int64) (bool, error)
}
