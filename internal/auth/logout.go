package auth

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"

	"cargo-backend/internal/utilities"
)

// ClaimsKey is the gin context key under which the admin middleware stores
// the validated *jwt.RegisteredClaims.
const ClaimsKey = "claims"

// LogoutController handles admin logout by blacklisting JWT tokens
type LogoutController struct {
	BlacklistStore JwtBlacklistStore
	Log            *logrus.Logger
}

// NewLogoutController creates a new instance of LogoutController
func NewLogoutController(blacklistStore JwtBlacklistStore, log *logrus.Logger) *LogoutController {
	return &LogoutController{
		BlacklistStore: blacklistStore,
		Log:            log,
	}
}

// LogoutHandler revokes the token of the current request until it expires.
// @Summary Admin logout
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utilities.MessageResponse "Successfully logged out"
// @Failure 401 {object} utilities.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Blacklist store error"
// @Router /auth/logout [post]
func (lc *LogoutController) LogoutHandler(c *gin.Context) {
	claims, err := extractClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	err = lc.BlacklistStore.AddToBlacklist(c.Request.Context(), claims.ID, claims.ExpiresAt.Time)
	if err != nil {
		utilities.RequestLog(c, lc.Log).WithError(err).Error("failed to blacklist token")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to logout"})
		return
	}

	LogAuthAttempt(lc.Log, logrus.InfoLevel, "Success", claims.Subject, "admin logged out")
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Successfully logged out"})
}

func extractClaims(c *gin.Context) (*jwt.RegisteredClaims, error) {
	claims, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	realClaims, okCast := claims.(*jwt.RegisteredClaims)
	if !okCast {
		return nil, fmt.Errorf("invalid token claims type")
	}
	if realClaims.ID == "" || realClaims.ExpiresAt == nil {
		return nil, fmt.Errorf("token cannot be revoked")
	}
	return realClaims, nil
}
