package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catsgram-backend/internal/common/config"
)

func testConfig(driver string) *config.Config {
	cfg := &config.Config{ServiceName: "catsgram"}
	cfg.Storage.Driver = driver
	cfg.Server.Origins = []string{"*"}
	cfg.Redis.KeyPrefix = "test"
	cfg.Database.AutoMigrate = true
	return cfg
}

func newApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	app, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func call(app *App, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	app.Router().ServeHTTP(w, req)
	return w
}

func postIDs(t *testing.T, w *httptest.ResponseRecorder) []int64 {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var posts []struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	out := make([]int64, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

// runScenario walks the user and post flow against a fresh app.
func runScenario(t *testing.T, app *App) {
	w := call(app, http.MethodPost, "/users", `{"email":"a@b.com"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"id":1`)

	w = call(app, http.MethodPost, "/users", `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = call(app, http.MethodPost, "/posts", `{"authorId":1,"description":"hi"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, []int64{1}, postIDs(t, call(app, http.MethodGet, "/posts", "")))

	w = call(app, http.MethodPost, "/posts", `{"authorId":1,"description":"yo"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	assert.Equal(t, []int64{1, 2}, postIDs(t, call(app, http.MethodGet, "/posts?sort=asc", "")))
	assert.Equal(t, []int64{2, 1}, postIDs(t, call(app, http.MethodGet, "/posts", "")))
	assert.Equal(t, []int64{2}, postIDs(t, call(app, http.MethodGet, "/posts?size=1&from=1&sort=asc", "")))

	w = call(app, http.MethodPost, "/posts", `{"authorId":2,"description":"nobody"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestApp_MemoryScenario(t *testing.T) {
	runScenario(t, newApp(t, testConfig(config.DriverMemory)))
}

func TestApp_SQLiteScenario(t *testing.T) {
	cfg := testConfig(config.DriverSQLite)
	cfg.Database.DSN = filepath.Join(t.TempDir(), "catsgram.db")
	runScenario(t, newApp(t, cfg))
}

func TestApp_RedisScenario(t *testing.T) {
	srv := miniredis.RunT(t)
	cfg := testConfig(config.DriverRedis)
	cfg.Redis.Host = srv.Host()
	port, err := strconv.Atoi(srv.Port())
	require.NoError(t, err)
	cfg.Redis.Port = port

	app := newApp(t, cfg)
	runScenario(t, app)
	assert.True(t, srv.Exists("test:post:2"))

	assert.Equal(t, http.StatusOK, call(app, http.MethodGet, "/ready", "").Code)
	srv.Close()
	assert.Equal(t, http.StatusServiceUnavailable, call(app, http.MethodGet, "/ready", "").Code)
}

func TestApp_Probes(t *testing.T) {
	app := newApp(t, testConfig(config.DriverMemory))

	w := call(app, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"service":"catsgram"`)

	assert.Equal(t, http.StatusOK, call(app, http.MethodGet, "/live", "").Code)
	assert.Equal(t, http.StatusOK, call(app, http.MethodGet, "/ready", "").Code)
}

func TestApp_SwaggerToggle(t *testing.T) {
	cfg := testConfig(config.DriverMemory)
	assert.Equal(t, http.StatusNotFound, call(newApp(t, cfg), http.MethodGet, "/swagger/doc.json", "").Code)

	cfg = testConfig(config.DriverMemory)
	cfg.Server.SwaggerEnabled = true
	w := call(newApp(t, cfg), http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/posts")
}

func TestApp_SwaggerDocumentsPasswordOmission(t *testing.T) {
	cfg := testConfig(config.DriverMemory)
	cfg.Server.SwaggerEnabled = true
	app := newApp(t, cfg)

	w := call(app, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The stored password is not echoed back.")

	w = call(app, http.MethodPost, "/users", `{"email":"a@b.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestApp_RequestIDEchoed(t *testing.T) {
	app := newApp(t, testConfig(config.DriverMemory))

	req := httptest.NewRequest(http.MethodGet, "/posts/9", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), `"request_id":"req-42"`)
}

func TestNew_FailsOnUnreachableRedis(t *testing.T) {
	srv := miniredis.RunT(t)
	cfg := testConfig(config.DriverRedis)
	cfg.Redis.Host = srv.Host()
	port, err := strconv.Atoi(srv.Port())
	require.NoError(t, err)
	cfg.Redis.Port = port
	srv.Close()

	_, err = New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestMigrate(t *testing.T) {
	assert.Error(t, Migrate(context.Background(), testConfig(config.DriverMemory)))

	cfg := testConfig(config.DriverSQLite)
	cfg.Database.DSN = filepath.Join(t.TempDir(), "catsgram.db")
	require.NoError(t, Migrate(context.Background(), cfg))

	cfg.Database.AutoMigrate = false
	runScenario(t, newApp(t, cfg))
}
