package memory

import (
	"context"
	"sort"
	"sync"

	"catsgram-backend/internal/features/user/models"
	"catsgram-backend/internal/features/user/repository"
)

type memoryRepository struct {
	mu    sync.RWMutex
	users map[int64]*models.User
}

// NewMemoryRepository returns a process-local store. Records are copied on
// the way in and out so callers never alias stored state.
func NewMemoryRepository() repository.UserRepository {
	return &memoryRepository{users: make(map[int64]*models.User)}
}

func (r *memoryRepository) List(_ context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u.Clone())
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (r *memoryRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u.Clone(), nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *memoryRepository) NextID(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var maxID int64
	for id := range r.users {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1, nil
}

func (r *memoryRepository) Save(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = user.Clone()
	return nil
}
