package handler

import (
	"errors"
	"strings"
	"unicode"

	"homenotify/internal/domain"
	"homenotify/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	data := cleanCallbackData(callback.Unique)
	if data == "" {
		data = cleanCallbackData(callback.Data)
	}

	if len(data) == 3 && data[0] == 'n' {
		return h.handlePreferenceToggle(c, data)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond()
}

// handlePreferenceToggle processes a "n<category><bit>" menu button press:
// persist the new flag, acknowledge the callback and update the rendered
// menu in place.
func (h *Handler) handlePreferenceToggle(c tele.Context, data string) error {
	category, ok := domain.CategoryByCode(data[1])
	if !ok {
		return c.Respond()
	}
	value := data[2] == '1'

	if _, err := h.registration.SetPreference(c.Sender().ID, category, &value); err != nil {
		if errors.Is(err, service.ErrNotAuthorized) {
			return c.Respond()
		}
		h.logger.Error("Failed to persist preference from callback",
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: msgInternalError})
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	return h.editPreferenceMenu(c)
}

// editPreferenceMenu re-renders the menu onto the message the callback
// originated from.
func (h *Handler) editPreferenceMenu(c tele.Context) error {
	user, err := h.registration.User(c.Sender().ID)
	if err != nil {
		h.logger.Error("Failed to load user for menu edit", zap.Error(err))
		return nil
	}
	if user == nil {
		return nil
	}

	text, markup := preferenceMenu(user)
	if err := c.Edit(text, markup); err != nil {
		// A concurrent button press may already have applied this exact
		// edit; that is not worth a new message.
		if strings.Contains(err.Error(), "message is not modified") {
			return nil
		}
		h.logger.Warn("Failed to edit preference menu, sending new",
			zap.Int64("user_id", user.UserID),
			zap.Error(err),
		)
		return c.Send(text, markup)
	}
	return nil
}
