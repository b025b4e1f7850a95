package handler

import (
	"strconv"
	"strings"

	"homenotify/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles bare text messages. A 6-digit number is a registration
// code confirmation attempt; everything else is ignored.
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	if !service.IsRegistrationCode(text) {
		return nil
	}

	code, err := strconv.Atoi(text)
	if err != nil {
		return nil
	}

	user, result, err := h.registration.ConfirmCode(c.Sender().ID, code)
	if err != nil {
		h.logger.Error("Failed to confirm registration code", zap.Error(err))
		return c.Send(msgInternalError)
	}

	switch result {
	case service.ConfirmAlreadyVerified:
		return c.Send(msgAlreadyAuthorized)
	case service.ConfirmVerified:
		if user.IsAdmin {
			h.registerAdminCommands(user.ChatID)
		}
		return c.Send(msgAuthorized)
	}

	// No record or mismatching code: no feedback, deliberately.
	return nil
}

// registerAdminCommands scopes the reload command to the admin's chat so it
// shows up in their command menu.
func (h *Handler) registerAdminCommands(chatID int64) {
	commands := []tele.Command{
		{Text: "reload", Description: "Benutzerliste neu laden"},
	}
	scope := tele.CommandScope{Type: tele.CommandScopeChat, ChatID: chatID}
	if err := h.bot.SetCommands(commands, scope); err != nil {
		h.logger.Warn("Failed to set admin commands",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}
