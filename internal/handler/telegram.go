package handler

import (
	"context"

	"vocabu/internal/command"
	"vocabu/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// RegisterHandlers binds the router to bot text and callback updates
func (h *Handler) RegisterHandlers(bot *tele.Bot) {
	bot.Handle(tele.OnText, h.onText)
	bot.Handle(tele.OnCallback, h.onCallback)
}

func (h *Handler) onText(c tele.Context) error {
	return h.HandleText(context.Background(), updateFromContext(c))
}

func (h *Handler) onCallback(c tele.Context) error {
	// Acknowledge first so the client stops the loading indicator
	if err := c.Respond(); err != nil {
		h.logger.Debug("Failed to acknowledge callback")
	}
	return h.HandleCallback(context.Background(), updateFromContext(c))
}

func updateFromContext(c tele.Context) Update {
	u := Update{Text: c.Text()}
	if chat := c.Chat(); chat != nil {
		u.ChatID = chat.ID
	}
	if cb := c.Callback(); cb != nil {
		u.Data = cb.Data
	}
	if sender := c.Sender(); sender != nil {
		u.Sender = &domain.User{
			ID:           sender.ID,
			ChatID:       u.ChatID,
			FirstName:    sender.FirstName,
			LastName:     sender.LastName,
			UserName:     sender.Username,
			LanguageCode: sender.LanguageCode,
			IsBot:        sender.IsBot,
		}
	}
	return u
}

// TelegramMessenger sends replies through a telebot bot
type TelegramMessenger struct {
	bot *tele.Bot
}

// NewTelegramMessenger creates a messenger for the bot
func NewTelegramMessenger(bot *tele.Bot) *TelegramMessenger {
	return &TelegramMessenger{bot: bot}
}

// Send delivers the reply. Replies without inline buttons carry the default keyboard.
func (m *TelegramMessenger) Send(_ context.Context, reply Reply) error {
	opts := []interface{}{replyMarkup(reply)}
	if reply.HTML {
		opts = append(opts, tele.ModeHTML)
	}
	_, err := m.bot.Send(tele.ChatID(reply.ChatID), reply.Text, opts...)
	return err
}

func replyMarkup(reply Reply) *tele.ReplyMarkup {
	if len(reply.Buttons) == 0 {
		return defaultKeyboard()
	}

	rows := make([][]tele.InlineButton, 0, len(reply.Buttons))
	for _, row := range reply.Buttons {
		buttons := make([]tele.InlineButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tele.InlineButton{Text: b.Text, Data: b.Data})
		}
		rows = append(rows, buttons)
	}
	return &tele.ReplyMarkup{InlineKeyboard: rows}
}

func defaultKeyboard() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{
		ResizeKeyboard: true,
		ReplyKeyboard: [][]tele.ReplyButton{{
			{Text: command.Vocabulary.Token()},
			{Text: command.Learned.Token()},
			{Text: command.Exercise.Token()},
		}},
	}
}
