package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "catsgram-backend/internal/common/errors"
	"catsgram-backend/internal/features/user/models"
	"catsgram-backend/internal/features/user/repository"
	"catsgram-backend/internal/features/user/repository/memory"
	"catsgram-backend/internal/features/user/service"
)

func ptr[T any](v T) *T { return &v }

var fixedNow = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func newService() service.UserService {
	return service.NewUserService(memory.NewMemoryRepository(), service.WithClock(func() time.Time { return fixedNow }))
}

func TestUserService_Create_AssignsIDAndDate(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	first, err := svc.Create(ctx, models.CreateUserRequest{Email: "a@b.com", Username: "a", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, fixedNow, first.RegistrationDate)
	assert.Equal(t, "a", first.Username)
	assert.Equal(t, "p", first.Password)

	second, err := svc.Create(ctx, models.CreateUserRequest{Email: "c@d.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestUserService_Create_RequiresEmail(t *testing.T) {
	svc := newService()

	for _, email := range []string{"", "   "} {
		_, err := svc.Create(context.Background(), models.CreateUserRequest{Email: email})
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeConditionsNotMet), "email %q", email)
	}

	users, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateUserRequest{Email: "a@b.com"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.CreateUserRequest{Email: "a@b.com"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeDuplicatedData))

	// comparison is case-sensitive
	u, err := svc.Create(ctx, models.CreateUserRequest{Email: "A@B.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), u.ID)
}

func TestUserService_Update_OnlyProvidedFields(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	created, err := svc.Create(ctx, models.CreateUserRequest{Email: "a@b.com", Username: "alpha", Password: "one"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, models.UpdateUserRequest{ID: ptr(created.ID), Username: ptr("beta")})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "a@b.com", updated.Email)
	assert.Equal(t, "beta", updated.Username)
	assert.Equal(t, "one", updated.Password)
	assert.Equal(t, created.RegistrationDate, updated.RegistrationDate)

	stored, err := svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "beta", stored.Username)
}

func TestUserService_Update_KeepsOwnEmail(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	created, err := svc.Create(ctx, models.CreateUserRequest{Email: "a@b.com"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, models.UpdateUserRequest{ID: ptr(created.ID), Email: ptr("a@b.com"), Password: ptr("new")})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Password)
}

func TestUserService_Update_Failures(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	_, err := svc.Create(ctx, models.CreateUserRequest{Email: "a@b.com"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, models.CreateUserRequest{Email: "c@d.com", Username: "c"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, models.UpdateUserRequest{Email: ptr("x@y.com")})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConditionsNotMet))

	_, err = svc.Update(ctx, models.UpdateUserRequest{ID: ptr(int64(42))})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))

	_, err = svc.Update(ctx, models.UpdateUserRequest{ID: ptr(second.ID), Email: ptr("a@b.com"), Username: ptr("changed")})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeDuplicatedData))

	stored, err := svc.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "c@d.com", stored.Email)
	assert.Equal(t, "c", stored.Username)
}

func TestUserService_FindByIDAndExists(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	created, err := svc.Create(ctx, models.CreateUserRequest{Email: "a@b.com"})
	require.NoError(t, err)

	exists, err := svc.UserExists(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.UserExists(ctx, 99)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.FindByID(ctx, 99)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}

func TestUserService_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := svc.Create(ctx, models.CreateUserRequest{Email: fmt.Sprintf("user%d@x", i)})
			if assert.NoError(t, err) {
				ids <- u.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*models.User)
	return users, args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) Save(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func TestUserService_StorageFailuresAreInternal(t *testing.T) {
	repo := new(mockUserRepository)
	svc := service.NewUserService(repo)
	ctx := context.Background()
	boom := errors.New("connection reset")

	repo.On("GetByEmail", ctx, "a@b.com").Return(nil, repository.ErrUserNotFound).Once()
	repo.On("NextID", ctx).Return(int64(1), nil).Once()
	repo.On("Save", ctx, mock.AnythingOfType("*models.User")).Return(boom).Once()

	_, err := svc.Create(ctx, models.CreateUserRequest{Email: "a@b.com"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInternal))
	assert.ErrorIs(t, err, boom)

	repo.On("GetByID", ctx, int64(3)).Return(nil, boom).Once()
	_, err = svc.UserExists(ctx, 3)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInternal))

	repo.AssertExpectations(t)
}
