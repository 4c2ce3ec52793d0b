package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"

	"cargo-backend/internal/auth"
	"cargo-backend/internal/utilities"
)

// JwtBlacklistCheck rejects tokens revoked by logout. It runs after
// RequireAdmin and does nothing when no claims were stored.
func JwtBlacklistCheck(bl auth.JwtBlacklistStore, log *logrus.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw, exists := ctx.Get(auth.ClaimsKey)
		if !exists {
			ctx.Next()
			return
		}
		claims, ok := raw.(*jwt.RegisteredClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: "Invalid access token",
			})
			return
		}

		isBlacklisted, err := bl.IsBlacklisted(ctx.Request.Context(), claims.ID)
		if err != nil {
			utilities.RequestLog(ctx, log).WithError(err).Error("failed to check token blacklist")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: "Failed to validate token",
			})
			return
		}

		if isBlacklisted {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: "Token has been revoked",
			})
			return
		}

		ctx.Next()
	}
}
