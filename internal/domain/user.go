package domain

import "time"

// User represents a bot user
type User struct {
	ID           int64
	ChatID       int64
	FirstName    string
	LastName     string
	UserName     string
	LanguageCode string
	IsBot        bool
	Banned       bool
	CreatedAt    time.Time
}
