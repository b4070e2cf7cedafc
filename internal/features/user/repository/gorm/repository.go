package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"catsgram-backend/internal/features/user/models"
	"catsgram-backend/internal/features/user/repository"
)

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository works against any gorm dialect (postgres, sqlite).
func NewGormRepository(db *gorm.DB) repository.UserRepository {
	return &gormRepository{db: db}
}

func (r *gormRepository) List(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *gormRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *gormRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *gormRepository) NextID(ctx context.Context) (int64, error) {
	var maxID int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute next user id: %w", err)
	}
	return maxID + 1, nil
}

func (r *gormRepository) Save(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(user).Error
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}
