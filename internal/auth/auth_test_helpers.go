package auth

import (
	"fmt"
	"net/http"
	"testing"

	"cargo-backend/internal/utilities"
)

// GetAccessToken is a helper function to obtain an access token by simulating a login API call.
// It returns the access token as a string and any error encountered during the process.
func GetAccessToken(
	t testing.TB,
	handler *AdminAuthHandler,
	username string,
	password string,
) (string, error) {
	t.Helper()
	rec, resp, err := utilities.SimulateAPICall(handler.LoginHandler, "/api/auth/login", http.MethodPost, map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	if rec.Code != http.StatusOK {
		return "", fmt.Errorf("login Failed: status %d, body: %s", rec.Code, rec.Body.String())
	}
	if resp["access_token"] == nil {
		return "", fmt.Errorf("login Failed: no access_token in response: %s", rec.Body.String())
	}
	return resp["access_token"].(string), nil
}
