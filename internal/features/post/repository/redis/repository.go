package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/redis/go-redis/v9"

	"catsgram-backend/internal/features/post/models"
	"catsgram-backend/internal/features/post/repository"
)

// postRepository keeps posts as JSON under "<prefix>:post:<id>" and orders them
// in the sorted set "<prefix>:posts:by_date", scored by post date in microseconds.
// Members are zero-padded ids so equal dates fall back to id order.
type postRepository struct {
	client *redis.Client
	prefix string
}

func NewPostRepository(client *redis.Client, prefix string) repository.PostRepository {
	return &postRepository{
		client: client,
		prefix: prefix,
	}
}

func (r *postRepository) postKey(id int64) string { return fmt.Sprintf("%s:post:%d", r.prefix, id) }
func (r *postRepository) dateKey() string         { return r.prefix + ":posts:by_date" }

func member(id int64) string { return fmt.Sprintf("%019d", id) }

func parseMember(m string) (int64, error) {
	id, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt post id %q: %w", m, err)
	}
	return id, nil
}

func (r *postRepository) List(ctx context.Context, q models.ListQuery) ([]*models.Post, error) {
	start := int64(q.From)
	// -1 is the last element; avoids overflow for huge sizes
	stop := int64(-1)
	if int64(q.Size) <= math.MaxInt64-start {
		stop = start + int64(q.Size) - 1
	}

	var (
		members []string
		err     error
	)
	if q.Sort == models.Ascending {
		members, err = r.client.ZRange(ctx, r.dateKey(), start, stop).Result()
	} else {
		members, err = r.client.ZRevRange(ctx, r.dateKey(), start, stop).Result()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to range posts: %w", err)
	}
	if len(members) == 0 {
		return []*models.Post{}, nil
	}

	keys := make([]string, len(members))
	for i, m := range members {
		id, err := parseMember(m)
		if err != nil {
			return nil, err
		}
		keys[i] = r.postKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	posts := make([]*models.Post, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var post models.Post
		if err := json.Unmarshal([]byte(raw), &post); err != nil {
			return nil, fmt.Errorf("failed to decode post: %w", err)
		}
		posts = append(posts, &post)
	}
	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	postJSON, err := r.client.Get(ctx, r.postKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	var post models.Post
	if err := json.Unmarshal(postJSON, &post); err != nil {
		return nil, fmt.Errorf("failed to decode post: %w", err)
	}
	return &post, nil
}

func (r *postRepository) NextID(ctx context.Context) (int64, error) {
	members, err := r.client.ZRange(ctx, r.dateKey(), 0, -1).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read post ids: %w", err)
	}

	var maxID int64
	for _, m := range members {
		id, err := parseMember(m)
		if err != nil {
			return 0, err
		}
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1, nil
}

func (r *postRepository) Save(ctx context.Context, post *models.Post) error {
	postJSON, err := json.Marshal(post)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.postKey(post.ID), postJSON, 0)
		pipe.ZAdd(ctx, r.dateKey(), redis.Z{
			Score:  float64(post.PostDate.UnixMicro()),
			Member: member(post.ID),
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}
