package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"homenotify/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*UserStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewUserStore(dir, zap.NewNop())
	require.NoError(t, err)
	return store, dir
}

func TestUserStore_UpsertAndFind(t *testing.T) {
	store, _ := newTestStore(t)

	user := &domain.User{
		UserID:           123,
		ChatID:           456,
		FirstName:        "Max",
		UserName:         "max",
		RegistrationCode: 654321,
		DoorbellEnabled:  true,
	}

	require.NoError(t, store.Upsert(user))

	found, err := store.FindByUserID(123)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, *user, *found)
}

func TestUserStore_FindMissing(t *testing.T) {
	store, _ := newTestStore(t)

	found, err := store.FindByUserID(999)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserStore_FindReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Upsert(&domain.User{UserID: 1}))

	found, err := store.FindByUserID(1)
	require.NoError(t, err)
	found.DoorbellEnabled = true

	again, err := store.FindByUserID(1)
	require.NoError(t, err)
	assert.False(t, again.DoorbellEnabled, "mutating a lookup result must not affect the store")
}

func TestUserStore_UpsertIdempotent(t *testing.T) {
	store, dir := newTestStore(t)

	user := &domain.User{UserID: 42, ChatID: 42, FirstName: "Erika"}
	require.NoError(t, store.Upsert(user))

	first, err := os.ReadFile(filepath.Join(dir, "42.json"))
	require.NoError(t, err)

	require.NoError(t, store.Upsert(user))

	second, err := os.ReadFile(filepath.Join(dir, "42.json"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	users, err := store.All()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserStore_UpsertReplaces(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Upsert(&domain.User{UserID: 7, FirstName: "Old"}))
	require.NoError(t, store.Upsert(&domain.User{UserID: 7, FirstName: "New"}))

	users, err := store.All()
	require.NoError(t, err)
	require.Len(t, users, 1, "at most one record per user id")
	assert.Equal(t, "New", users[0].FirstName)
}

func TestUserStore_SurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	store, err := NewUserStore(dir, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Upsert(&domain.User{
		UserID:           5,
		ChatID:           5,
		RegistrationCode: domain.CodeVerified,
		DinnerEnabled:    true,
	}))

	// A fresh store over the same directory sees the persisted record.
	reopened, err := NewUserStore(dir, zap.NewNop())
	require.NoError(t, err)

	found, err := reopened.FindByUserID(5)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.Verified())
	assert.True(t, found.DinnerEnabled)
}

func TestUserStore_ReloadSkipsMalformed(t *testing.T) {
	dir := t.TempDir()

	store, err := NewUserStore(dir, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Upsert(&domain.User{UserID: 1}))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "2.json"), []byte("{not json"), 0o644))

	require.NoError(t, store.Reload())

	users, err := store.All()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserStore_ReloadPicksUpExternalEdits(t *testing.T) {
	store, dir := newTestStore(t)

	// Record added out of band, e.g. an admin editing the directory by hand.
	external := domain.User{
		UserID:           77,
		ChatID:           77,
		RegistrationCode: domain.CodeVerified,
		DoorbellEnabled:  true,
		IsAdmin:          true,
	}
	data, err := json.Marshal(external)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "77.json"), data, 0o644))

	found, err := store.FindByUserID(77)
	require.NoError(t, err)
	assert.Nil(t, found, "not visible before reload")

	require.NoError(t, store.Reload())

	found, err = store.FindByUserID(77)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, external, *found)
}

func TestUserStore_RecordFileLayout(t *testing.T) {
	store, dir := newTestStore(t)

	require.NoError(t, store.Upsert(&domain.User{UserID: 9, RegistrationCode: 123456}))

	data, err := os.ReadFile(filepath.Join(dir, "9.json"))
	require.NoError(t, err)

	// Field names stay compatible with records from the previous system.
	assert.Contains(t, string(data), `"UserId"`)
	assert.Contains(t, string(data), `"RegistrationCode"`)
	assert.Contains(t, string(data), `"ReceiveDoorbellNotifications"`)
}
