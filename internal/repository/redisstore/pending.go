// Package redisstore keeps per-chat conversation state in Redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"vocabu/internal/domain"

	"github.com/redis/go-redis/v9"
)

// PendingStore implements repository.PendingInteractionRepository
type PendingStore struct {
	client *redis.Client
}

// NewPendingStore creates a new pending interaction store
func NewPendingStore(client *redis.Client) *PendingStore {
	return &PendingStore{client: client}
}

func pendingKey(chatID int64) string {
	return "pending:" + strconv.FormatInt(chatID, 10)
}

// Put stores the interaction, replacing the chat's previous one
func (s *PendingStore) Put(ctx context.Context, pending domain.PendingInteraction) error {
	return s.client.Set(ctx, pendingKey(pending.ChatID), pending.Encode(), 0).Err()
}

// Take consumes the chat's interaction with GETDEL
func (s *PendingStore) Take(ctx context.Context, chatID int64) (*domain.PendingInteraction, error) {
	raw, err := s.client.GetDel(ctx, pendingKey(chatID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	pending, err := domain.DecodePendingInteraction(chatID, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid pending interaction %q: %w", raw, err)
	}
	return pending, nil
}

// Delete removes the chat's interaction if any
func (s *PendingStore) Delete(ctx context.Context, chatID int64) error {
	return s.client.Del(ctx, pendingKey(chatID)).Err()
}
