// Package repositorytest holds behaviour shared by every PostRepository backend.
package repositorytest

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catsgram-backend/internal/features/post/models"
	"catsgram-backend/internal/features/post/repository"
)

func ids(posts []*models.Post) []int64 {
	out := make([]int64, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

// Run exercises a fresh repository returned by newRepo for each subtest.
func Run(t *testing.T, newRepo func(t *testing.T) repository.PostRepository) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	seed := func(t *testing.T, repo repository.PostRepository) {
		t.Helper()
		// ids 1..5, dates out of id order, 3 and 4 share a date
		dates := map[int64]time.Duration{1: 0, 2: 3 * time.Hour, 3: time.Hour, 4: time.Hour, 5: 2 * time.Hour}
		for id := int64(1); id <= 5; id++ {
			require.NoError(t, repo.Save(ctx, &models.Post{
				ID:          id,
				AuthorID:    1,
				Description: "post",
				PostDate:    base.Add(dates[id]),
			}))
		}
	}

	t.Run("empty store", func(t *testing.T) {
		repo := newRepo(t)

		posts, err := repo.List(ctx, models.DefaultListQuery())
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)

		next, err := repo.NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), next)

		_, err = repo.GetByID(ctx, 1)
		assert.ErrorIs(t, err, repository.ErrPostNotFound)
	})

	t.Run("save and read back", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Save(ctx, &models.Post{ID: 1, AuthorID: 7, Description: "hi", PostDate: base}))

		got, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.AuthorID)
		assert.Equal(t, "hi", got.Description)
		assert.True(t, base.Equal(got.PostDate))
	})

	t.Run("save replaces", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Save(ctx, &models.Post{ID: 1, AuthorID: 7, Description: "hi", PostDate: base}))
		require.NoError(t, repo.Save(ctx, &models.Post{ID: 1, AuthorID: 7, Description: "yo", PostDate: base}))

		posts, err := repo.List(ctx, models.DefaultListQuery())
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "yo", posts[0].Description)
	})

	t.Run("next id is max plus one", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Save(ctx, &models.Post{ID: 12, AuthorID: 1, Description: "a", PostDate: base}))
		require.NoError(t, repo.Save(ctx, &models.Post{ID: 3, AuthorID: 1, Description: "b", PostDate: base.Add(time.Hour)}))

		next, err := repo.NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(13), next)
	})

	t.Run("list orders by date then id", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)

		asc, err := repo.List(ctx, models.ListQuery{Sort: models.Ascending, Size: 10})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 3, 4, 5, 2}, ids(asc))

		desc, err := repo.List(ctx, models.ListQuery{Sort: models.Descending, Size: 10})
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 5, 4, 3, 1}, ids(desc))
	})

	t.Run("list pages after sorting", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)

		cases := []struct {
			q    models.ListQuery
			want []int64
		}{
			{models.ListQuery{Sort: models.Ascending, From: 1, Size: 2}, []int64{3, 4}},
			{models.ListQuery{Sort: models.Descending, From: 0, Size: 1}, []int64{2}},
			{models.ListQuery{Sort: models.Descending, From: 3, Size: 10}, []int64{3, 1}},
			{models.ListQuery{Sort: models.Ascending, From: 5, Size: 10}, []int64{}},
			{models.ListQuery{Sort: models.Ascending, From: 50, Size: 1}, []int64{}},
			{models.ListQuery{Sort: models.Ascending, From: 2, Size: math.MaxInt64}, []int64{4, 5, 2}},
			{models.ListQuery{Sort: models.Descending, From: 0, Size: math.MaxInt64}, []int64{2, 5, 4, 3, 1}},
		}
		for _, tc := range cases {
			got, err := repo.List(ctx, tc.q)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(got), "%+v", tc.q)
		}
	})
}
