package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cargo-backend/internal/auth"
	"cargo-backend/internal/config"
	"cargo-backend/internal/database"
	"cargo-backend/internal/testutil"
	"cargo-backend/internal/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validation.Setup(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func newTestEngine(t *testing.T, mutate func(cfg *config.Config)) *gin.Engine {
	t.Helper()
	db := database.GetTestDB(t)
	db.Config.Frontend.DistDir = filepath.Join(t.TempDir(), "dist")
	db.Config.Frontend.SourceDir = filepath.Join(t.TempDir(), "frontend")
	db.Config.RateLimit.RequestsPerSecond = 1000
	if mutate != nil {
		mutate(db.Config)
	}

	s, err := NewMyServer(db.Config, database.TestLogger(), db, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	engine, ok := s.RegisterRoutes().(*gin.Engine)
	require.True(t, ok)
	return engine
}

func withAdmin(cfg *config.Config) {
	cfg.Auth.SecretKey = "server-secret"
	cfg.Auth.AdminUsername = "dispatch"
	cfg.Auth.AdminPassword = "s3cret-pass"
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	rec, resp := testutil.MakeJSONRequest(gin.H{"username": "dispatch", "password": "s3cret-pass"}, "", r, "/api/auth/login", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return resp["access_token"].(string)
}

func TestNewServer(t *testing.T) {
	db := database.GetTestDB(t)
	srv, err := NewServer(db.Config, database.TestLogger(), db, nil)
	require.NoError(t, err)
	assert.Equal(t, ":8000", srv.Addr)
	assert.NotNil(t, srv.Handler)
}

type closingStore struct {
	auth.JwtBlacklistStore
	closed int
}

func (s *closingStore) Close() error {
	s.closed++
	return nil
}

func TestMyServerClose(t *testing.T) {
	db := database.GetTestDB(t)
	s, err := NewMyServer(db.Config, database.TestLogger(), db, nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	store := &closingStore{JwtBlacklistStore: s.Blacklist}
	s.Blacklist = store
	require.NoError(t, s.Close())
	assert.Equal(t, 1, store.closed)
}

func TestHealth(t *testing.T) {
	r := newTestEngine(t, nil)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/api/health", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, gin.H{"status": "healthy", "service": "77 Cargo API"}, gin.H(resp))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestOpenAdminRoutesWithoutCredentials(t *testing.T) {
	r := newTestEngine(t, nil)

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"first_name": "Ivan", "last_name": "Petrov", "email": "ivan@example.com", "phone": "5551234567",
	}, "", r, "/api/applications", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, list := testutil.MakeJSONListRequest("", r, "/api/applications")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, list, 1)
}

func TestAdminFlow(t *testing.T) {
	r := newTestEngine(t, withAdmin)

	// public submissions need no token
	rec, created := testutil.MakeJSONRequest(gin.H{
		"first_name": "Ivan", "last_name": "Petrov", "email": "ivan@example.com", "phone": "5551234567",
	}, "", r, "/api/applications", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = testutil.MakeJSONRequest(gin.H{"first_name": "Ana", "email": "ana@x.com", "message": "hello"}, "", r, "/api/contact", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)

	path := fmt.Sprintf("/api/applications/%v", created["id"])
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/applications"},
		{http.MethodGet, path},
		{http.MethodPatch, path + "/status"},
		{http.MethodDelete, path},
		{http.MethodGet, "/api/contact"},
		{http.MethodPost, "/api/auth/logout"},
	} {
		rec, _ := testutil.MakeJSONRequest(gin.H{"status": "hired"}, "", r, tc.path, tc.method)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, tc.method+" "+tc.path)
	}

	token := login(t, r)

	rec, list := testutil.MakeJSONListRequest(token, r, "/api/applications")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, list, 1)

	rec, resp := testutil.MakeJSONRequest(gin.H{"status": "interview"}, token, r, path+"/status", http.MethodPatch)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "interview", resp["status"])

	rec, list = testutil.MakeJSONListRequest(token, r, "/api/contact")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, list, 1)

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/api/auth/logout", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp = testutil.MakeJSONRequest(nil, token, r, "/api/applications", http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token has been revoked", resp["error"])

	rec, resp = testutil.MakeJSONRequest(gin.H{"username": "dispatch", "password": "wrong"}, "", r, "/api/auth/login", http.MethodPost)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Username or password is incorrect", resp["error"])
}

func TestFallbacks(t *testing.T) {
	r := newTestEngine(t, nil)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Frontend not found", resp["error"])

	rec, resp = testutil.MakeJSONRequest(nil, "", r, "/api/nothing-here", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", resp["error"])
}

func TestFrontendServed(t *testing.T) {
	var dist string
	r := newTestEngine(t, func(cfg *config.Config) {
		dist = cfg.Frontend.DistDir
		require.NoError(t, os.MkdirAll(filepath.Join(dist, "assets"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dist, "index.html"), []byte("<html>77</html>"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dist, "assets", "app.js"), []byte("js"), 0o644))
	})

	for _, path := range []string{"/", "/careers", "/contact"} {
		rec := testutil.ServeJSON(nil, "", r, path, http.MethodGet)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "<html>77</html>", rec.Body.String(), path)
	}

	rec := testutil.ServeJSON(nil, "", r, "/assets/app.js", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "js", rec.Body.String())

	// API routes take precedence over the fallback
	rec = testutil.ServeJSON(nil, "", r, "/api/health", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSwaggerOnlyOutsideRelease(t *testing.T) {
	r := newTestEngine(t, nil)
	rec := testutil.ServeJSON(nil, "", r, "/swagger/doc.json", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	r = newTestEngine(t, func(cfg *config.Config) { cfg.Server.Mode = gin.ReleaseMode })
	rec = testutil.ServeJSON(nil, "", r, "/swagger/doc.json", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORS(t *testing.T) {
	r := newTestEngine(t, func(cfg *config.Config) {
		cfg.Server.AllowOrigins = []string{"https://77cargo.example"}
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://77cargo.example")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://77cargo.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
