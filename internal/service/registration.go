package service

import (
	"errors"
	"fmt"
	"math/rand"

	"homenotify/internal/domain"
	"homenotify/internal/repository"

	"go.uber.org/zap"
)

// ErrNotAuthorized marks commands from users without the required standing.
// Callers are expected to swallow it silently; no feedback is the policy.
var ErrNotAuthorized = errors.New("user is not authorized")

// ConfirmResult describes the outcome of a registration-code attempt.
type ConfirmResult int

const (
	ConfirmNoRecord ConfirmResult = iota
	ConfirmAlreadyVerified
	ConfirmVerified
	ConfirmMismatch
)

// RegistrationService handles the registration handshake and preference
// mutations on top of the user repository.
type RegistrationService struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(repo repository.UserRepository, logger *zap.Logger) *RegistrationService {
	return &RegistrationService{
		repo:   repo,
		logger: logger,
	}
}

// Register creates or refreshes the caller's record. A fresh 6-digit code is
// generated unless the record is already verified; chat id and names are
// refreshed either way, preferences are preserved.
func (s *RegistrationService) Register(userID, chatID int64, firstName, userName string) (*domain.User, error) {
	user, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &domain.User{UserID: userID}
	}

	user.ChatID = chatID
	user.FirstName = firstName
	user.UserName = userName
	if !user.Verified() {
		user.RegistrationCode = newRegistrationCode()
	}

	if err := s.repo.Upsert(user); err != nil {
		return nil, fmt.Errorf("persist registration: %w", err)
	}

	s.logger.Info("User registered",
		zap.Int64("user_id", userID),
		zap.Bool("verified", user.Verified()),
	)
	return user, nil
}

// ConfirmCode validates a registration-code attempt. Mismatches are reported
// as a result, not an error; only persistence failures are errors.
func (s *RegistrationService) ConfirmCode(userID int64, code int) (*domain.User, ConfirmResult, error) {
	user, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, ConfirmNoRecord, err
	}
	if user == nil {
		return nil, ConfirmNoRecord, nil
	}
	if user.Verified() {
		return user, ConfirmAlreadyVerified, nil
	}
	if user.RegistrationCode != code {
		return user, ConfirmMismatch, nil
	}

	user.RegistrationCode = domain.CodeVerified
	if err := s.repo.Upsert(user); err != nil {
		return nil, ConfirmNoRecord, fmt.Errorf("persist verification: %w", err)
	}

	s.logger.Info("User verified", zap.Int64("user_id", userID))
	return user, ConfirmVerified, nil
}

// SetPreference sets or toggles one category flag for a verified user and
// returns the new value. A nil value toggles.
func (s *RegistrationService) SetPreference(userID int64, category domain.Category, value *bool) (bool, error) {
	user, err := s.repo.FindByUserID(userID)
	if err != nil {
		return false, err
	}
	if user == nil || !user.Verified() {
		return false, ErrNotAuthorized
	}

	enabled := !user.Preference(category)
	if value != nil {
		enabled = *value
	}
	user.SetPreference(category, enabled)

	if err := s.repo.Upsert(user); err != nil {
		return false, fmt.Errorf("persist preference: %w", err)
	}

	s.logger.Info("Preference updated",
		zap.Int64("user_id", userID),
		zap.String("category", string(category)),
		zap.Bool("enabled", enabled),
	)
	return enabled, nil
}

// User returns the caller's record, or nil when none exists
func (s *RegistrationService) User(userID int64) (*domain.User, error) {
	return s.repo.FindByUserID(userID)
}

// AdminUser returns the first verified admin record, or nil
func (s *RegistrationService) AdminUser() (*domain.User, error) {
	users, err := s.repo.All()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].IsAdmin && users[i].Verified() {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Reload re-reads the user set from storage. Only verified admins may call it.
func (s *RegistrationService) Reload(userID int64) error {
	user, err := s.repo.FindByUserID(userID)
	if err != nil {
		return err
	}
	if user == nil || !user.Verified() || !user.IsAdmin {
		return ErrNotAuthorized
	}

	if err := s.repo.Reload(); err != nil {
		return fmt.Errorf("reload user records: %w", err)
	}

	s.logger.Info("User records reloaded", zap.Int64("requested_by", userID))
	return nil
}

// IsRegistrationCode reports whether a bare text message looks like a
// registration-code confirmation attempt.
func IsRegistrationCode(text string) bool {
	if len(text) != 6 {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// newRegistrationCode returns a uniformly random 6-digit code
func newRegistrationCode() int {
	return 100000 + rand.Intn(900000)
}
