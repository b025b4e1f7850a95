package repository

import (
	"homenotify/internal/domain"
)

// UserRepository defines user record operations
type UserRepository interface {
	// FindByUserID returns the record for the given id, or nil when none
	// exists. Absence is not an error.
	FindByUserID(userID int64) (*domain.User, error)

	// Upsert creates or replaces the record for user.UserID and persists it
	// durably before returning.
	Upsert(user *domain.User) error

	// All returns a snapshot of every record for notification fan-out.
	All() ([]domain.User, error)

	// Reload replaces the in-memory set from durable storage, picking up
	// records edited or added out of band.
	Reload() error
}
