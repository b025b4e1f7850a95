package handler

import (
	"errors"
	"strconv"

	"homenotify/internal/domain"
	"homenotify/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleNotify handles "/notify [category] [true|false]". Without arguments
// it renders the interactive preference menu instead.
func (h *Handler) handleNotify(c tele.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return h.sendPreferenceMenu(c)
	}

	category, ok := domain.ParseCategory(args[0])
	if !ok {
		// Unknown category, no action.
		return nil
	}

	var value *bool
	if len(args) >= 2 {
		if b, err := strconv.ParseBool(args[1]); err == nil {
			value = &b
		}
	}

	enabled, err := h.registration.SetPreference(c.Sender().ID, category, value)
	if errors.Is(err, service.ErrNotAuthorized) {
		return nil
	}
	if err != nil {
		h.logger.Error("Failed to update preference",
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
		return c.Send(msgInternalError)
	}

	return c.Send(confirmationText(category, enabled))
}

// sendPreferenceMenu sends a fresh preference menu to the caller
func (h *Handler) sendPreferenceMenu(c tele.Context) error {
	user, err := h.registration.User(c.Sender().ID)
	if err != nil {
		h.logger.Error("Failed to load user for menu", zap.Error(err))
		return c.Send(msgInternalError)
	}
	if user == nil {
		return nil
	}

	text, markup := preferenceMenu(user)
	return c.Send(text, markup)
}

// handleReload handles the admin-only /reload command
func (h *Handler) handleReload(c tele.Context) error {
	err := h.registration.Reload(c.Sender().ID)
	if errors.Is(err, service.ErrNotAuthorized) {
		return nil
	}
	if err != nil {
		h.logger.Error("Failed to reload user records", zap.Error(err))
		return c.Send(msgInternalError)
	}

	return c.Send(msgReloadTriggered)
}
