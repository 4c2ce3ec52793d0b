// Package auth implements admin login, access tokens and token revocation.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cargo-backend/internal/config"
	"cargo-backend/internal/utilities"
)

// ErrAdminDisabled is returned when no admin credentials are configured.
var ErrAdminDisabled = errors.New("admin credentials are not configured")

// AdminAuthHandler holds the admin credentials and signs access tokens.
type AdminAuthHandler struct {
	Config *config.Config
	Log    *logrus.Logger

	passwordHash string
}

// NewAdminAuthHandler prepares the admin credentials. A plain ADMIN_PASSWORD
// is hashed once here, ADMIN_PASSWORD_HASH is used as given.
func NewAdminAuthHandler(cfg *config.Config, log *logrus.Logger) (*AdminAuthHandler, error) {
	h := &AdminAuthHandler{Config: cfg, Log: log}
	if !cfg.AdminEnabled() {
		return h, nil
	}

	h.passwordHash = cfg.Auth.AdminPasswordHash
	if h.passwordHash == "" {
		hashed, err := utilities.HashPassword(cfg.Auth.AdminPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		h.passwordHash = hashed
	}
	return h, nil
}

type loginInfo struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type" example:"Bearer"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Authenticate checks username and password against the configured admin.
func (h *AdminAuthHandler) Authenticate(username string, password string) (bool, error) {
	if h.passwordHash == "" {
		return false, ErrAdminDisabled
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.Config.Auth.AdminUsername)) == 1
	// always run bcrypt so a wrong username costs the same as a wrong password
	passOK := utilities.VerifyPassword(password, h.passwordHash)
	return userOK && passOK, nil
}

// LoginHandler exchanges the admin credentials for an access token.
// @Summary Admin login
// @Description Returns a bearer token for the admin endpoints
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Admin credentials"
// @Success 200 {object} auth.TokenResponse "Access token"
// @Failure 401 {object} utilities.ErrorResponse "Username or password is incorrect"
// @Failure 404 {object} utilities.ErrorResponse "Admin login is disabled"
// @Failure 422 {object} utilities.ValidationErrorResponse "Username or password is not provided"
// @Failure 429 {object} utilities.ErrorResponse "Too many requests"
// @Failure 500 {object} utilities.ErrorResponse "Token signing error"
// @Router /auth/login [post]
func (h *AdminAuthHandler) LoginHandler(c *gin.Context) {
	var info loginInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		utilities.AbortWithBindError(c, err)
		return
	}

	ok, err := h.Authenticate(info.Username, info.Password)
	if errors.Is(err, ErrAdminDisabled) {
		LogAuthAttempt(h.Log, logrus.WarnLevel, "Fail", info.Username, "admin login is disabled")
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Admin login is disabled"})
		return
	}
	if !ok {
		LogAuthAttempt(h.Log, logrus.WarnLevel, "Fail", info.Username, "invalid credentials")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "Username or password is incorrect"})
		return
	}

	accessToken, claims, err := GenerateToken(h.Config.Auth.SecretKey, info.Username, h.Config.Auth.TokenTTL)
	if err != nil {
		LogAuthAttempt(h.Log, logrus.ErrorLevel, "Fail", info.Username, err.Error())
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to generate access token"})
		return
	}

	LogAuthAttempt(h.Log, logrus.InfoLevel, "Success", info.Username, "admin logged in")
	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   claims.ExpiresAt.Time.UTC(),
	})
}
