package service

import (
	"context"
	"errors"
	"sync"
	"time"

	apperrors "catsgram-backend/internal/common/errors"
	"catsgram-backend/internal/common/logger"
	"catsgram-backend/internal/common/validation"
	"catsgram-backend/internal/features/user/models"
	"catsgram-backend/internal/features/user/repository"
)

type Option func(*userService)

// WithClock replaces time.Now as the source of registration dates.
func WithClock(now func() time.Time) Option {
	return func(s *userService) { s.now = now }
}

type userService struct {
	repo repository.UserRepository
	now  func() time.Time

	// mu serializes mutations so email checks and id assignment are atomic.
	mu sync.Mutex
}

func NewUserService(repo repository.UserRepository, opts ...Option) UserService {
	s := &userService{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *userService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if validation.IsBlank(req.Email) {
		return nil, apperrors.NewConditionsNotMet("email must be specified")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureEmailFree(ctx, req.Email, 0); err != nil {
		return nil, err
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, apperrors.NewInternal("next user id", err)
	}

	user := &models.User{
		ID:               id,
		Email:            req.Email,
		Username:         req.Username,
		Password:         req.Password,
		RegistrationDate: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, apperrors.NewInternal("save user", err)
	}

	logger.Info().Int64("user_id", user.ID).Msg("User created")
	return user, nil
}

func (s *userService) Update(ctx context.Context, req models.UpdateUserRequest) (*models.User, error) {
	if req.ID == nil {
		return nil, apperrors.NewConditionsNotMet("id must be specified")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.repo.GetByID(ctx, *req.ID)
	if err != nil {
		return nil, s.translate(err, "get user", *req.ID)
	}

	if req.Email != nil {
		if err := s.ensureEmailFree(ctx, *req.Email, user.ID); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Password != nil {
		user.Password = *req.Password
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, apperrors.NewInternal("save user", err)
	}

	logger.Info().Int64("user_id", user.ID).Msg("User updated")
	return user, nil
}

func (s *userService) FindAll(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternal("list users", err)
	}
	return users, nil
}

func (s *userService) FindByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(err, "get user", id)
	}
	return user, nil
}

func (s *userService) UserExists(ctx context.Context, id int64) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repository.ErrUserNotFound):
		return false, nil
	default:
		return false, apperrors.NewInternal("get user", err)
	}
}

// ensureEmailFree fails when email belongs to a user other than ownerID.
func (s *userService) ensureEmailFree(ctx context.Context, email string, ownerID int64) error {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		return apperrors.NewInternal("find user by email", err)
	}
	if existing.ID != ownerID {
		logger.Debug().Int64("owner_id", existing.ID).Msg("Email already in use")
		return apperrors.NewDuplicatedData("this email is already in use")
	}
	return nil
}

func (s *userService) translate(err error, operation string, id int64) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return apperrors.NewNotFound("user", id)
	}
	return apperrors.NewInternal(operation, err)
}
