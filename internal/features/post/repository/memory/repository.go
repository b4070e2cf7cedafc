package memory

import (
	"context"
	"sync"

	"catsgram-backend/internal/features/post/models"
	"catsgram-backend/internal/features/post/repository"
)

type memoryRepository struct {
	mu    sync.RWMutex
	posts map[int64]*models.Post
}

func NewMemoryRepository() repository.PostRepository {
	return &memoryRepository{posts: make(map[int64]*models.Post)}
}

func (r *memoryRepository) List(_ context.Context, q models.ListQuery) ([]*models.Post, error) {
	r.mu.RLock()
	posts := make([]*models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		posts = append(posts, p.Clone())
	}
	r.mu.RUnlock()

	return repository.SortAndPage(posts, q), nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}
	return p.Clone(), nil
}

func (r *memoryRepository) NextID(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var maxID int64
	for id := range r.posts {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1, nil
}

func (r *memoryRepository) Save(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts[post.ID] = post.Clone()
	return nil
}
