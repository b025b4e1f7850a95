package handler

import (
	tele "gopkg.in/telebot.v3"
)

// Sender adapts the bot for notification delivery, satisfying
// dispatcher.Sender without exposing telebot to the dispatcher.
type Sender struct {
	bot *tele.Bot
}

// NewSender creates a sender over the bot
func NewSender(bot *tele.Bot) *Sender {
	return &Sender{bot: bot}
}

// Send delivers a plain text message to a chat
func (s *Sender) Send(chatID int64, text string) error {
	_, err := s.bot.Send(tele.ChatID(chatID), text)
	return err
}
