package testutil

import (
	"homenotify/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a verified or pending test user
func NewTestUser(userID int64, verified bool) *domain.User {
	code := 123456
	if verified {
		code = domain.CodeVerified
	}
	return &domain.User{
		UserID:           userID,
		ChatID:           userID,
		FirstName:        "Test",
		RegistrationCode: code,
	}
}

// NewTestAdmin creates a verified admin test user
func NewTestAdmin(userID int64) *domain.User {
	admin := NewTestUser(userID, true)
	admin.IsAdmin = true
	return admin
}
