package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"catsgram-backend/internal/features/post/models"
	"catsgram-backend/internal/features/post/repository"
)

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) repository.PostRepository {
	return &gormRepository{db: db}
}

func (r *gormRepository) List(ctx context.Context, q models.ListQuery) ([]*models.Post, error) {
	desc := q.Sort != models.Ascending

	posts := []*models.Post{}
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "post_date"}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc}).
		Offset(q.From).
		Limit(q.Size).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *gormRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

func (r *gormRepository) NextID(ctx context.Context) (int64, error) {
	var maxID int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute next post id: %w", err)
	}
	return maxID + 1, nil
}

func (r *gormRepository) Save(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(post).Error
	if err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}
