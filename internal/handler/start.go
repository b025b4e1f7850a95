package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles the /start registration command
func (h *Handler) handleStart(c tele.Context) error {
	sender := c.Sender()

	h.logger.Info("User started bot",
		zap.Int64("user_id", sender.ID),
		zap.String("username", sender.Username),
	)

	user, err := h.registration.Register(sender.ID, c.Chat().ID, sender.FirstName, sender.Username)
	if err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		return c.Send(msgInternalError)
	}

	if user.Verified() {
		return c.Send(msgAlreadyAuthorized)
	}

	if err := c.Send(msgAskForCode); err != nil {
		return err
	}

	h.forwardCodeToAdmin(sender, user.RegistrationCode)
	return nil
}

// forwardCodeToAdmin sends the new user's identity and code to a verified
// admin for out-of-band distribution. No admin yet is a normal condition.
func (h *Handler) forwardCodeToAdmin(sender *tele.User, code int) {
	admin, err := h.registration.AdminUser()
	if err != nil {
		h.logger.Error("Failed to look up admin", zap.Error(err))
		return
	}
	if admin == nil || admin.UserID == sender.ID {
		return
	}

	text := fmt.Sprintf("User: %s, %s, %s\nCode: %d",
		sender.FirstName, sender.LastName, sender.Username, code)
	if _, err := h.bot.Send(tele.ChatID(admin.ChatID), text); err != nil {
		h.logger.Warn("Failed to forward code to admin",
			zap.Int64("admin_id", admin.UserID),
			zap.Error(err),
		)
	}
}
