package handler

import (
	"fmt"
	"strings"

	"homenotify/internal/domain"
	"homenotify/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Reply texts. Wording carried over from the household's previous setup.
const (
	msgAskForCode        = "Bitte gib den Code ein, welcher dir vom Admin zur Verfügung gestellt wurde."
	msgAlreadyAuthorized = "Sie sind bereits authorisiert"
	msgAuthorized        = "Erfolgreich authorisiert"
	msgReloadTriggered   = "Config Reload wurde angestoßen"
	msgInternalError     = "Es ist ein Fehler aufgetreten. Bitte versuche es später erneut."
	msgMenuHeader        = "Welche Benachrichtung möchtest du ändern?"
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	registration *service.RegistrationService
	logger       *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, registration *service.RegistrationService, logger *zap.Logger) *Handler {
	return &Handler{
		bot:          bot,
		registration: registration,
		logger:       logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/notify", h.handleNotify)
	h.bot.Handle("/reload", h.handleReload)

	// Bare text messages (registration code confirmations)
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (preference menu buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// preferenceMenu renders the interactive menu for the user's current flags.
// Button callback codes are "n" + category letter + desired state bit.
func preferenceMenu(user *domain.User) (string, *tele.ReplyMarkup) {
	markup := &tele.ReplyMarkup{}

	row := tele.Row{}
	lines := []string{msgMenuHeader}
	for _, category := range domain.Categories() {
		enabled := user.Preference(category)
		row = append(row, markup.Data(
			fmt.Sprintf("%s %s", category.DisplayName(), onOff(!enabled)),
			fmt.Sprintf("n%c%d", category.Code(), bit(!enabled)),
		))
		lines = append(lines, fmt.Sprintf("%s: %s", category.DisplayName(), stateWord(enabled)))
	}
	markup.Inline(row)

	return strings.Join(lines, "\n"), markup
}

// confirmationText renders the reply for a changed preference
func confirmationText(category domain.Category, enabled bool) string {
	if enabled {
		return fmt.Sprintf("Du erhälst nun Benachrichtungen für %s", category.Subject())
	}
	return fmt.Sprintf("Du erhälst nun keine Benachrichtungen für %s", category.Subject())
}

func onOff(enabled bool) string {
	if enabled {
		return "an"
	}
	return "aus"
}

func stateWord(enabled bool) string {
	if enabled {
		return "angeschaltet"
	}
	return "ausgeschaltet"
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
