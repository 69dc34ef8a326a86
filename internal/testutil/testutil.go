package testutil

import (
	"time"

	"vocabu/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user whose id equals the chat id
func NewTestUser(id int64, userName string) *domain.User {
	return &domain.User{
		ID:           id,
		ChatID:       id,
		FirstName:    "Test",
		UserName:     userName,
		LanguageCode: "en",
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// NewTestWord creates a test vocabulary word
func NewTestWord(id, chatID int64, english, translation string, score int) *domain.Word {
	return &domain.Word{
		ID:          id,
		ChatID:      chatID,
		English:     english,
		Translation: translation,
		Score:       score,
		Learned:     score >= domain.MaxScore,
	}
}

// NewTestStaged creates a test staged translation
func NewTestStaged(id, chatID int64, english, translation string, method domain.TranslationMethod) *domain.StagedTranslation {
	return &domain.StagedTranslation{
		ID:          id,
		ChatID:      chatID,
		English:     english,
		Translation: translation,
		Method:      method,
	}
}
