package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"homenotify/internal/domain"

	"go.uber.org/zap"
)

// UserStore implements repository.UserRepository on top of one JSON file per
// user in a single directory. The in-memory map mirrors the directory; the
// lock is never held across network I/O.
type UserStore struct {
	dir    string
	logger *zap.Logger

	mu    sync.RWMutex
	users map[int64]domain.User
}

// NewUserStore creates the storage directory if needed and loads all records
func NewUserStore(dir string, logger *zap.Logger) (*UserStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	s := &UserStore{
		dir:    dir,
		logger: logger,
		users:  make(map[int64]domain.User),
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}

	return s, nil
}

// Reload re-reads every record file, replacing the in-memory set. Malformed
// or unreadable files are skipped so one corrupt record cannot block startup.
func (s *UserStore) Reload() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("read store directory: %w", err)
	}

	users := make(map[int64]domain.User)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("Skipping unreadable user record",
				zap.String("file", path),
				zap.Error(err),
			)
			continue
		}

		var user domain.User
		if err := json.Unmarshal(data, &user); err != nil {
			s.logger.Warn("Skipping malformed user record",
				zap.String("file", path),
				zap.Error(err),
			)
			continue
		}

		users[user.UserID] = user
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()

	s.logger.Info("User records loaded", zap.Int("count", len(users)))
	return nil
}

// FindByUserID returns a copy of the record, or nil when none exists
func (s *UserStore) FindByUserID(userID int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Upsert persists the record to its file, then replaces the in-memory entry.
// An I/O failure leaves the in-memory set untouched and is returned to the
// caller.
func (s *UserStore) Upsert(user *domain.User) error {
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal user %d: %w", user.UserID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, fmt.Sprintf("%d.json", user.UserID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write user record: %w", err)
	}

	s.users[user.UserID] = *user
	return nil
}

// All returns a snapshot copy of every record
func (s *UserStore) All() ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}
