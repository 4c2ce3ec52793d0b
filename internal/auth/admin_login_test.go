package auth

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cargo-backend/internal/config"
	"cargo-backend/internal/database"
	"cargo-backend/internal/utilities"
	"cargo-backend/internal/validation"
)

const (
	testAdmin    = "dispatch"
	testPassword = "s3cret-pass"
	testSecret   = "test-secret"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validation.Setup(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Auth.SecretKey = testSecret
	cfg.Auth.AdminUsername = testAdmin
	cfg.Auth.AdminPassword = testPassword
	return cfg
}

func newHandler(t *testing.T, cfg *config.Config) *AdminAuthHandler {
	t.Helper()
	h, err := NewAdminAuthHandler(cfg, database.TestLogger())
	require.NoError(t, err)
	return h
}

func TestLogin_Success(t *testing.T) {
	h := newHandler(t, testConfig())

	rec, resp, err := utilities.SimulateAPICall(h.LoginHandler, "/api/auth/login", http.MethodPost, map[string]string{
		"username": testAdmin,
		"password": testPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer", resp["token_type"])
	assert.NotEmpty(t, resp["expires_at"])

	token, err := ValidatedToken(testSecret, resp["access_token"].(string))
	require.NoError(t, err)
	claims := token.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, JwtIssuer, claims.Issuer)
	assert.Equal(t, testAdmin, claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestLogin_PasswordHash(t *testing.T) {
	hashed, err := utilities.HashPassword(testPassword)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Auth.AdminPassword = ""
	cfg.Auth.AdminPasswordHash = hashed
	h := newHandler(t, cfg)

	token, err := GetAccessToken(t, h, testAdmin, testPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongCredentials(t *testing.T) {
	h := newHandler(t, testConfig())

	for _, creds := range []map[string]string{
		{"username": testAdmin, "password": "nope"},
		{"username": "someone", "password": testPassword},
	} {
		rec, resp, err := utilities.SimulateAPICall(h.LoginHandler, "/api/auth/login", http.MethodPost, creds)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Username or password is incorrect", resp["error"])
	}
}

func TestLogin_MissingFields(t *testing.T) {
	h := newHandler(t, testConfig())

	rec, resp, err := utilities.SimulateAPICall(h.LoginHandler, "/api/auth/login", http.MethodPost, map[string]string{
		"username": testAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, resp["fields"], "password")
}

func TestLogin_Disabled(t *testing.T) {
	h := newHandler(t, config.Default())

	rec, _, err := utilities.SimulateAPICall(h.LoginHandler, "/api/auth/login", http.MethodPost, map[string]string{
		"username": "admin",
		"password": "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	_, err = h.Authenticate("admin", "admin")
	assert.ErrorIs(t, err, ErrAdminDisabled)
}

func TestValidatedToken(t *testing.T) {
	token, _, err := GenerateToken(testSecret, testAdmin, time.Hour)
	require.NoError(t, err)

	_, err = ValidatedToken("other-secret", token)
	assert.Error(t, err)

	expired, _, err := GenerateToken(testSecret, testAdmin, -time.Minute)
	require.NoError(t, err)
	_, err = ValidatedToken(testSecret, expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Issuer: JwtIssuer})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ValidatedToken(testSecret, unsigned)
	assert.Error(t, err)
}
