// Package repositorytest holds behaviour shared by every UserRepository backend.
package repositorytest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catsgram-backend/internal/features/user/models"
	"catsgram-backend/internal/features/user/repository"
)

// Run exercises a fresh repository returned by newRepo for each subtest.
func Run(t *testing.T, newRepo func(t *testing.T) repository.UserRepository) {
	t.Helper()
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	t.Run("empty store", func(t *testing.T) {
		repo := newRepo(t)

		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)

		next, err := repo.NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), next)

		_, err = repo.GetByID(ctx, 1)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
		_, err = repo.GetByEmail(ctx, "a@b.com")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("save and read back", func(t *testing.T) {
		repo := newRepo(t)
		user := &models.User{ID: 1, Email: "a@b.com", Username: "a", Password: "p", RegistrationDate: date}
		require.NoError(t, repo.Save(ctx, user))

		got, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", got.Email)
		assert.Equal(t, "a", got.Username)
		assert.Equal(t, "p", got.Password)
		assert.True(t, date.Equal(got.RegistrationDate))

		byEmail, err := repo.GetByEmail(ctx, "a@b.com")
		require.NoError(t, err)
		assert.Equal(t, int64(1), byEmail.ID)

		_, err = repo.GetByEmail(ctx, "A@B.COM")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("next id is max plus one", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Save(ctx, &models.User{ID: 1, Email: "1@x", RegistrationDate: date}))
		require.NoError(t, repo.Save(ctx, &models.User{ID: 5, Email: "5@x", RegistrationDate: date}))
		require.NoError(t, repo.Save(ctx, &models.User{ID: 3, Email: "3@x", RegistrationDate: date}))

		next, err := repo.NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(6), next)

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, []int64{1, 3, 5}, []int64{users[0].ID, users[1].ID, users[2].ID})
	})

	t.Run("save replaces and moves email", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Save(ctx, &models.User{ID: 1, Email: "old@x", Username: "u", RegistrationDate: date}))
		require.NoError(t, repo.Save(ctx, &models.User{ID: 1, Email: "new@x", Username: "u2", RegistrationDate: date}))

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "new@x", users[0].Email)
		assert.Equal(t, "u2", users[0].Username)

		_, err = repo.GetByEmail(ctx, "old@x")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
		got, err := repo.GetByEmail(ctx, "new@x")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("returned records are detached", func(t *testing.T) {
		repo := newRepo(t)
		user := &models.User{ID: 1, Email: "a@b.com", RegistrationDate: date}
		require.NoError(t, repo.Save(ctx, user))
		user.Email = "mutated@x"

		got, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		got.Username = "mutated"

		again, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", again.Email)
		assert.Empty(t, again.Username)
	})
}
