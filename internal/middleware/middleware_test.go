package middleware

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	tele "gopkg.in/telebot.v3"
)

type fakeContext struct {
	tele.Context
	chat     *tele.Chat
	callback *tele.Callback
}

func (c fakeContext) Chat() *tele.Chat { return c.chat }

func (c fakeContext) Callback() *tele.Callback { return c.callback }

func TestChatLock_SerializesSameChat(t *testing.T) {
	var active, maxActive int32
	handler := ChatLock(NewChatLocks())(func(c tele.Context) error {
		n := atomic.AddInt32(&active, 1)
		for {
			current := atomic.LoadInt32(&maxActive)
			if n <= current || atomic.CompareAndSwapInt32(&maxActive, current, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&active, -1)
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = handler(fakeContext{chat: &tele.Chat{ID: 1}})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxActive))
}

func TestChatLock_DifferentChatsRunConcurrently(t *testing.T) {
	locks := NewChatLocks()
	unlock := locks.Lock(1)
	defer unlock()

	done := make(chan struct{})
	go func() {
		locks.Lock(2)()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock of another chat was blocked")
	}
}

func TestChatLock_ReleasesIdleChats(t *testing.T) {
	locks := NewChatLocks()
	handler := ChatLock(locks)(func(c tele.Context) error {
		time.Sleep(time.Millisecond)
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			_ = handler(fakeContext{chat: &tele.Chat{ID: chatID}})
		}(int64(i % 5))
	}
	wg.Wait()

	locks.mu.Lock()
	defer locks.mu.Unlock()
	assert.Empty(t, locks.locks)
}

func TestChatLock_KeepsEntryWhileWaiting(t *testing.T) {
	locks := NewChatLocks()
	unlock := locks.Lock(1)

	acquired := make(chan func())
	go func() {
		acquired <- locks.Lock(1)
	}()

	// wait until the second caller is queued
	require.Eventually(t, func() bool {
		locks.mu.Lock()
		defer locks.mu.Unlock()
		return locks.locks[1] != nil && locks.locks[1].refs == 2
	}, time.Second, time.Millisecond)
	unlock()

	second := <-acquired
	locks.mu.Lock()
	assert.Len(t, locks.locks, 1)
	locks.mu.Unlock()

	second()
	locks.mu.Lock()
	assert.Empty(t, locks.locks)
	locks.mu.Unlock()
}

func TestChatLock_WithoutChat(t *testing.T) {
	called := false
	handler := ChatLock(NewChatLocks())(func(c tele.Context) error {
		called = true
		return nil
	})

	require.NoError(t, handler(fakeContext{}))
	assert.True(t, called)
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	ok := Logging(logger)(func(c tele.Context) error { return nil })
	require.NoError(t, ok(fakeContext{chat: &tele.Chat{ID: 5}}))

	failing := Logging(logger)(func(c tele.Context) error { return errors.New("send failed") })
	err := failing(fakeContext{chat: &tele.Chat{ID: 5}, callback: &tele.Callback{Data: "SKIP_EXERCISE"}})
	require.Error(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "Update handled", entries[0].Message)
	assert.Equal(t, "text", entries[0].ContextMap()["kind"])
	assert.Equal(t, int64(5), entries[0].ContextMap()["chat_id"])

	assert.Equal(t, "Failed to handle update", entries[1].Message)
	assert.Equal(t, "callback", entries[1].ContextMap()["kind"])
	assert.Equal(t, "send failed", entries[1].ContextMap()["error"])
}
