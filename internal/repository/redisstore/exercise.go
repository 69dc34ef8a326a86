package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"vocabu/internal/domain"

	"github.com/redis/go-redis/v9"
)

// ExerciseStore implements repository.ExerciseRepository
type ExerciseStore struct {
	client *redis.Client
}

// NewExerciseStore creates a new exercise store
func NewExerciseStore(client *redis.Client) *ExerciseStore {
	return &ExerciseStore{client: client}
}

func exerciseKey(chatID int64) string {
	return "exercise:" + strconv.FormatInt(chatID, 10)
}

// Create stores the exercise with SETNX
func (s *ExerciseStore) Create(ctx context.Context, exercise *domain.Exercise) (bool, error) {
	data, err := json.Marshal(exercise)
	if err != nil {
		return false, err
	}
	return s.client.SetNX(ctx, exerciseKey(exercise.ChatID), string(data), 0).Result()
}

// Find returns the chat's active exercise or nil
func (s *ExerciseStore) Find(ctx context.Context, chatID int64) (*domain.Exercise, error) {
	return decodeExercise(s.client.Get(ctx, exerciseKey(chatID)).Result())
}

// Take consumes the chat's active exercise with GETDEL
func (s *ExerciseStore) Take(ctx context.Context, chatID int64) (*domain.Exercise, error) {
	return decodeExercise(s.client.GetDel(ctx, exerciseKey(chatID)).Result())
}

func decodeExercise(raw string, err error) (*domain.Exercise, error) {
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var exercise domain.Exercise
	if err := json.Unmarshal([]byte(raw), &exercise); err != nil {
		return nil, err
	}
	return &exercise, nil
}
