package handler

import (
	"testing"

	"homenotify/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceMenu(t *testing.T) {
	user := &domain.User{
		UserID:           1,
		RegistrationCode: domain.CodeVerified,
		DoorbellEnabled:  true,
		DinnerEnabled:    false,
	}

	text, markup := preferenceMenu(user)

	assert.Contains(t, text, msgMenuHeader)
	assert.Contains(t, text, "Klingel: angeschaltet")
	assert.Contains(t, text, "Essen: ausgeschaltet")

	require.Len(t, markup.InlineKeyboard, 1)
	row := markup.InlineKeyboard[0]
	require.Len(t, row, 2)

	// Each button offers the opposite of the current state.
	assert.Equal(t, "Klingel aus", row[0].Text)
	assert.Equal(t, "nk0", row[0].Unique)
	assert.Equal(t, "Essen an", row[1].Text)
	assert.Equal(t, "ne1", row[1].Unique)
}

func TestConfirmationText(t *testing.T) {
	tests := []struct {
		name     string
		category domain.Category
		enabled  bool
		expected string
	}{
		{
			name:     "doorbell enabled",
			category: domain.CategoryDoorbell,
			enabled:  true,
			expected: "Du erhälst nun Benachrichtungen für die Klingel",
		},
		{
			name:     "doorbell disabled",
			category: domain.CategoryDoorbell,
			enabled:  false,
			expected: "Du erhälst nun keine Benachrichtungen für die Klingel",
		},
		{
			name:     "dinner enabled",
			category: domain.CategoryDinner,
			enabled:  true,
			expected: "Du erhälst nun Benachrichtungen für fertiges Essen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, confirmationText(tt.category, tt.enabled))
		})
	}
}
