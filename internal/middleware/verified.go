package middleware

import (
	"strings"

	"homenotify/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Verified gates the command surface: /start and registration-code texts
// always pass, everything else requires a verified record. Updates from
// unverified users are dropped without feedback, matching the registration
// policy.
func Verified(registration *service.RegistrationService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			if c.Callback() == nil {
				text := strings.TrimSpace(c.Text())
				if text == "/start" || strings.HasPrefix(text, "/start ") || service.IsRegistrationCode(text) {
					return next(c)
				}
			}

			user, err := registration.User(sender.ID)
			if err != nil {
				logger.Error("Failed to check verification in middleware", zap.Error(err))
				return nil
			}
			if user == nil || !user.Verified() {
				return nil
			}

			return next(c)
		}
	}
}
