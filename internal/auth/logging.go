package auth

import "github.com/sirupsen/logrus"

// LogAuthAttempt records an authentication attempt.
// status: Success|Fail
// identifier: the username that was tried (optional)
// message: additional info (optional)
func LogAuthAttempt(log *logrus.Logger, level logrus.Level, status string, identifier string, message string) {
	entry := log.WithFields(logrus.Fields{
		"component": "auth",
		"status":    status,
	})
	if identifier != "" {
		entry = entry.WithField("identifier", identifier)
	}
	if message == "" {
		message = "auth attempt"
	}
	entry.Log(level, message)
}
