package testutil

import (
	"context"

	"vocabu/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByChatID(ctx context.Context, chatID int64) (bool, error) {
	args := m.Called(ctx, chatID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByID(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindByChatID(ctx context.Context, chatID int64) (*domain.User, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserNameByID(ctx context.Context, userID int64) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) IsBanned(ctx context.Context, chatID int64) (bool, error) {
	args := m.Called(ctx, chatID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Ban(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) Unban(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) Save(ctx context.Context, word *domain.Word) error {
	args := m.Called(ctx, word)
	return args.Error(0)
}

func (m *MockWordRepository) FindByID(ctx context.Context, id int64) (*domain.Word, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) FindByChatIDAndLearned(ctx context.Context, chatID int64, learned bool) ([]domain.Word, error) {
	args := m.Called(ctx, chatID, learned)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) ExistsByEnglishOrTranslation(ctx context.Context, chatID int64, english, translation string) (bool, error) {
	args := m.Called(ctx, chatID, english, translation)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) ExistsByEnglish(ctx context.Context, chatID int64, english string) (bool, error) {
	args := m.Called(ctx, chatID, english)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) DeleteByChatID(ctx context.Context, chatID int64) error {
	args := m.Called(ctx, chatID)
	return args.Error(0)
}

// MockDictionaryRepository is a mock for DictionaryRepository
type MockDictionaryRepository struct {
	mock.Mock
}

func (m *MockDictionaryRepository) FindTranslation(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

func (m *MockDictionaryRepository) FindRandom(ctx context.Context) (*domain.DictionaryWord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DictionaryWord), args.Error(1)
}

func (m *MockDictionaryRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockDictionaryRepository) Save(ctx context.Context, word *domain.DictionaryWord) error {
	args := m.Called(ctx, word)
	return args.Error(0)
}

func (m *MockDictionaryRepository) SaveBatch(ctx context.Context, words []domain.DictionaryWord) error {
	args := m.Called(ctx, words)
	return args.Error(0)
}

func (m *MockDictionaryRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockStagedTranslationRepository is a mock for StagedTranslationRepository
type MockStagedTranslationRepository struct {
	mock.Mock
}

func (m *MockStagedTranslationRepository) Save(ctx context.Context, staged *domain.StagedTranslation) error {
	args := m.Called(ctx, staged)
	return args.Error(0)
}

func (m *MockStagedTranslationRepository) FindByID(ctx context.Context, id int64) (*domain.StagedTranslation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StagedTranslation), args.Error(1)
}

func (m *MockStagedTranslationRepository) Take(ctx context.Context, chatID, id int64) (*domain.StagedTranslation, error) {
	args := m.Called(ctx, chatID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StagedTranslation), args.Error(1)
}

// MockPendingInteractionRepository is a mock for PendingInteractionRepository
type MockPendingInteractionRepository struct {
	mock.Mock
}

func (m *MockPendingInteractionRepository) Put(ctx context.Context, pending domain.PendingInteraction) error {
	args := m.Called(ctx, pending)
	return args.Error(0)
}

func (m *MockPendingInteractionRepository) Take(ctx context.Context, chatID int64) (*domain.PendingInteraction, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingInteraction), args.Error(1)
}

func (m *MockPendingInteractionRepository) Delete(ctx context.Context, chatID int64) error {
	args := m.Called(ctx, chatID)
	return args.Error(0)
}

// MockExerciseRepository is a mock for ExerciseRepository
type MockExerciseRepository struct {
	mock.Mock
}

func (m *MockExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (bool, error) {
	args := m.Called(ctx, exercise)
	return args.Bool(0), args.Error(1)
}

func (m *MockExerciseRepository) Find(ctx context.Context, chatID int64) (*domain.Exercise, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) Take(ctx context.Context, chatID int64) (*domain.Exercise, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exercise), args.Error(1)
}

// MockTranslator is a mock for service.Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	args := m.Called(ctx, text, sourceLang, targetLang)
	return args.String(0), args.Error(1)
}
