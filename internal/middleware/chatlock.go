package middleware

import (
	"sync"

	tele "gopkg.in/telebot.v3"
)

// ChatLocks serializes updates of one chat. Different chats are processed concurrently.
type ChatLocks struct {
	mu    sync.Mutex
	locks map[int64]*chatLock
}

// chatLock is dropped from the table once no update holds or waits for it
type chatLock struct {
	mu   sync.Mutex
	refs int
}

// NewChatLocks creates an empty lock table
func NewChatLocks() *ChatLocks {
	return &ChatLocks{locks: make(map[int64]*chatLock)}
}

// Lock blocks until the chat is free and returns the unlock function
func (l *ChatLocks) Lock(chatID int64) func() {
	// Get or create lock for this chat
	l.mu.Lock()
	lock, exists := l.locks[chatID]
	if !exists {
		lock = &chatLock{}
		l.locks[chatID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, chatID)
		}
		l.mu.Unlock()
	}
}

// ChatLock creates middleware running handlers of one chat one at a time
func ChatLock(locks *ChatLocks) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chat := c.Chat()
			if chat == nil {
				return next(c)
			}

			unlock := locks.Lock(chat.ID)
			defer unlock()
			return next(c)
		}
	}
}
