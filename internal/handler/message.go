package handler

import (
	"context"

	"vocabu/internal/domain"
)

// Update is an incoming text message or callback tap
type Update struct {
	ChatID int64
	Sender *domain.User
	Text   string
	// Data is the callback payload, empty for text messages
	Data string
}

// Button is an inline keyboard button
type Button struct {
	Text string
	Data string
}

// Reply is an outgoing message
type Reply struct {
	ChatID  int64
	Text    string
	Buttons [][]Button
	HTML    bool
}

// Messenger delivers replies to chats
type Messenger interface {
	Send(ctx context.Context, reply Reply) error
}
