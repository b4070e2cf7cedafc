package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catsgram-backend/internal/common/middleware"
	"catsgram-backend/internal/features/user/models"
	"catsgram-backend/internal/features/user/repository/memory"
	"catsgram-backend/internal/features/user/service"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Errors())
	NewUserHandler(service.NewUserService(memory.NewMemoryRepository())).RegisterRoutes(r)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUserHandler_CreateAndList(t *testing.T) {
	r := newRouter()

	w := do(r, http.MethodPost, "/users", `{"email":"a@b.com","username":"cat","password":"secret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")

	var created models.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "cat", created.Username)
	assert.False(t, created.RegistrationDate.IsZero())

	w = do(r, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	var users []models.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "a@b.com", users[0].Email)
}

func TestUserHandler_ErrorStatuses(t *testing.T) {
	r := newRouter()
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/users", `{"email":"a@b.com"}`).Code)
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/users", `{"email":"c@d.com"}`).Code)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"missing email", http.MethodPost, "/users", `{"username":"x"}`, http.StatusUnprocessableEntity},
		{"duplicate email", http.MethodPost, "/users", `{"email":"a@b.com"}`, http.StatusConflict},
		{"malformed body", http.MethodPost, "/users", `{"email":`, http.StatusBadRequest},
		{"update without id", http.MethodPut, "/users", `{"email":"z@z"}`, http.StatusUnprocessableEntity},
		{"update unknown id", http.MethodPut, "/users", `{"id":9,"email":"z@z"}`, http.StatusNotFound},
		{"update to taken email", http.MethodPut, "/users", `{"id":2,"email":"a@b.com"}`, http.StatusConflict},
		{"get unknown", http.MethodGet, "/users/9", "", http.StatusNotFound},
		{"get bad id", http.MethodGet, "/users/abc", "", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.status, w.Code, w.Body.String())

			var body middleware.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
			assert.NotEmpty(t, body.Description)
		})
	}
}

func TestUserHandler_PartialUpdate(t *testing.T) {
	r := newRouter()
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/users", `{"email":"a@b.com","username":"cat"}`).Code)

	w := do(r, http.MethodPut, "/users", `{"id":1,"username":"tiger"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var user models.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "tiger", user.Username)
}
