package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// JwtIssuer is the issuer of every access token this service signs.
const JwtIssuer = "77cargo"

// GenerateToken signs an HS256 access token for subject that expires after ttl.
// Every token carries a random jti so it can be revoked on its own.
func GenerateToken(secret string, subject string, ttl time.Duration) (string, *jwt.RegisteredClaims, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    JwtIssuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", nil, fmt.Errorf("Failed to sign token: %s", err)
	}

	return signedToken, claims, nil
}

// ValidatedToken parses encodeToken, checks its HMAC signature against secret
// and its registered claims. The claims are *jwt.RegisteredClaims.
func ValidatedToken(secret string, encodeToken string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(encodeToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, isvalid := token.Method.(*jwt.SigningMethodHMAC); !isvalid {
			return nil, fmt.Errorf("Invalid token")
		}
		return []byte(secret), nil
	})
}
