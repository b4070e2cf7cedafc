package repository

import (
	"context"
	"errors"
	"sort"

	"catsgram-backend/internal/features/post/models"
)

var ErrPostNotFound = errors.New("post not found")

type PostRepository interface {
	// List returns the page selected by q; an offset past the end yields an empty slice.
	List(ctx context.Context, q models.ListQuery) ([]*models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	// NextID returns the current maximum id plus one, or 1 for an empty store.
	NextID(ctx context.Context) (int64, error)
	// Save inserts the post or replaces the stored record with the same id.
	Save(ctx context.Context, post *models.Post) error
}

// SortAndPage orders posts by date (id breaks ties in the same direction)
// and returns the requested window. posts is sorted in place.
func SortAndPage(posts []*models.Post, q models.ListQuery) []*models.Post {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if q.Sort == models.Ascending {
			if !a.PostDate.Equal(b.PostDate) {
				return a.PostDate.Before(b.PostDate)
			}
			return a.ID < b.ID
		}
		if !a.PostDate.Equal(b.PostDate) {
			return a.PostDate.After(b.PostDate)
		}
		return a.ID > b.ID
	})

	if q.From >= len(posts) {
		return []*models.Post{}
	}
	end := len(posts)
	if q.Size < end-q.From {
		end = q.From + q.Size
	}
	return posts[q.From:end]
}
