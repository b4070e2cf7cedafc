package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	apperrors "catsgram-backend/internal/common/errors"
	"catsgram-backend/internal/common/logger"
	"catsgram-backend/internal/common/validation"
	"catsgram-backend/internal/features/post/models"
	"catsgram-backend/internal/features/post/repository"
)

type Option func(*postService)

// WithClock replaces time.Now as the source of post dates.
func WithClock(now func() time.Time) Option {
	return func(s *postService) { s.now = now }
}

type postService struct {
	repo  repository.PostRepository
	users UserLookup
	now   func() time.Time

	mu sync.Mutex
}

func NewPostService(repo repository.PostRepository, users UserLookup, opts ...Option) PostService {
	s := &postService{
		repo:  repo,
		users: users,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *postService) Create(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	if validation.IsBlank(req.Description) {
		return nil, apperrors.NewConditionsNotMet("description must not be blank")
	}
	if req.AuthorID <= 0 {
		return nil, apperrors.NewConditionsNotMet("author must be specified")
	}

	exists, err := s.users.UserExists(ctx, req.AuthorID)
	if err != nil {
		return nil, apperrors.NewInternal("check post author", err)
	}
	if !exists {
		return nil, apperrors.NewConditionsNotMet(fmt.Sprintf("author with id = %d not found", req.AuthorID)).
			WithDetail("authorId", req.AuthorID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, apperrors.NewInternal("next post id", err)
	}

	post := &models.Post{
		ID:          id,
		AuthorID:    req.AuthorID,
		Description: req.Description,
		PostDate:    s.now().UTC(),
	}
	if err := s.repo.Save(ctx, post); err != nil {
		return nil, apperrors.NewInternal("save post", err)
	}

	logger.Info().Int64("post_id", post.ID).Int64("author_id", post.AuthorID).Msg("Post created")
	return post, nil
}

func (s *postService) Update(ctx context.Context, req models.UpdatePostRequest) (*models.Post, error) {
	if req.ID == nil {
		return nil, apperrors.NewConditionsNotMet("id must be specified")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, err := s.repo.GetByID(ctx, *req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, apperrors.NewNotFound("post", *req.ID)
		}
		return nil, apperrors.NewInternal("get post", err)
	}

	if validation.IsBlankPtr(req.Description) {
		return nil, apperrors.NewConditionsNotMet("description must not be blank")
	}
	post.Description = *req.Description

	if err := s.repo.Save(ctx, post); err != nil {
		return nil, apperrors.NewInternal("save post", err)
	}

	logger.Info().Int64("post_id", post.ID).Msg("Post updated")
	return post, nil
}

func (s *postService) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewInternal("get post", err)
	}
	return post, nil
}

func (s *postService) FindAll(ctx context.Context, q models.ListQuery) ([]*models.Post, error) {
	posts, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, apperrors.NewInternal("list posts", err)
	}
	return posts, nil
}
