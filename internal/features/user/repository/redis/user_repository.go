package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"catsgram-backend/internal/features/user/models"
	"catsgram-backend/internal/features/user/repository"
)

// userRepository keeps users as JSON under "<prefix>:user:<id>", the id set
// under "<prefix>:users" and an email→id hash under "<prefix>:users:email".
type userRepository struct {
	client *redis.Client
	prefix string
}

func NewUserRepository(client *redis.Client, prefix string) repository.UserRepository {
	return &userRepository{
		client: client,
		prefix: prefix,
	}
}

func (r *userRepository) userKey(id int64) string { return fmt.Sprintf("%s:user:%d", r.prefix, id) }
func (r *userRepository) idsKey() string          { return r.prefix + ":users" }
func (r *userRepository) emailKey() string        { return r.prefix + ":users:email" }

func (r *userRepository) ids(ctx context.Context) ([]int64, error) {
	members, err := r.client.SMembers(ctx, r.idsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read user ids: %w", err)
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt user id %q: %w", m, err)
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *userRepository) List(ctx context.Context) ([]*models.User, error) {
	ids, err := r.ids(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*models.User{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.userKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*models.User, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var user models.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, &user)
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	userJSON, err := r.client.Get(ctx, r.userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(userJSON, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	raw, err := r.client.HGet(ctx, r.emailKey(), email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt email index entry %q: %w", raw, err)
	}
	return r.GetByID(ctx, id)
}

func (r *userRepository) NextID(ctx context.Context) (int64, error) {
	ids, err := r.ids(ctx)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 1, nil
	}
	return ids[len(ids)-1] + 1, nil
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return err
	}

	previous, err := r.GetByID(ctx, user.ID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.userKey(user.ID), userJSON, 0)
		pipe.SAdd(ctx, r.idsKey(), user.ID)
		if previous != nil && previous.Email != user.Email {
			pipe.HDel(ctx, r.emailKey(), previous.Email)
		}
		pipe.HSet(ctx, r.emailKey(), user.Email, user.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}
