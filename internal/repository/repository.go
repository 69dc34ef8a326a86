// Package repository declares storage contracts.
// Lookups by id return domain.ErrNotFound for missing records.
package repository

import (
	"context"

	"vocabu/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	ExistsByChatID(ctx context.Context, chatID int64) (bool, error)
	ExistsByID(ctx context.Context, userID int64) (bool, error)
	FindByChatID(ctx context.Context, chatID int64) (*domain.User, error)
	FindUserNameByID(ctx context.Context, userID int64) (string, error)
	IsBanned(ctx context.Context, chatID int64) (bool, error)
	Ban(ctx context.Context, userID int64) error
	Unban(ctx context.Context, userID int64) error
	Count(ctx context.Context) (int, error)
	FindAll(ctx context.Context) ([]domain.User, error)
}

// WordRepository defines vocabulary word operations
type WordRepository interface {
	Save(ctx context.Context, word *domain.Word) error
	FindByID(ctx context.Context, id int64) (*domain.Word, error)
	FindByChatIDAndLearned(ctx context.Context, chatID int64, learned bool) ([]domain.Word, error)
	ExistsByEnglishOrTranslation(ctx context.Context, chatID int64, english, translation string) (bool, error)
	ExistsByEnglish(ctx context.Context, chatID int64, english string) (bool, error)
	DeleteByChatID(ctx context.Context, chatID int64) error
}

// DictionaryRepository defines curated dictionary operations
type DictionaryRepository interface {
	FindTranslation(ctx context.Context, text string) (string, error)
	FindRandom(ctx context.Context) (*domain.DictionaryWord, error)
	Count(ctx context.Context) (int, error)
	Save(ctx context.Context, word *domain.DictionaryWord) error
	SaveBatch(ctx context.Context, words []domain.DictionaryWord) error
	DeleteAll(ctx context.Context) error
}

// StagedTranslationRepository stores translations awaiting confirmation
type StagedTranslationRepository interface {
	Save(ctx context.Context, staged *domain.StagedTranslation) error
	FindByID(ctx context.Context, id int64) (*domain.StagedTranslation, error)
	// Take deletes the record owned by chatID and returns it.
	// Records of other chats are left intact and reported as ErrNotFound.
	Take(ctx context.Context, chatID, id int64) (*domain.StagedTranslation, error)
}

// PendingInteractionRepository stores at most one pending interaction per chat
type PendingInteractionRepository interface {
	// Put replaces any pending interaction of the chat
	Put(ctx context.Context, pending domain.PendingInteraction) error
	// Take atomically deletes and returns the chat's pending interaction.
	// It returns nil when the chat has none.
	Take(ctx context.Context, chatID int64) (*domain.PendingInteraction, error)
	Delete(ctx context.Context, chatID int64) error
}

// ExerciseRepository stores at most one active exercise per chat
type ExerciseRepository interface {
	// Create stores the exercise unless the chat already has one.
	// It reports whether the exercise was stored.
	Create(ctx context.Context, exercise *domain.Exercise) (bool, error)
	// Find returns nil when the chat has no active exercise
	Find(ctx context.Context, chatID int64) (*domain.Exercise, error)
	// Take atomically deletes and returns the chat's exercise, or nil
	Take(ctx context.Context, chatID int64) (*domain.Exercise, error)
}
