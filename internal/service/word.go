package service

import (
	"context"
	"errors"
	"fmt"

	"vocabu/internal/domain"
	"vocabu/internal/repository"

	"go.uber.org/zap"
)

// TranslationResolver resolves free text into a word pair
type TranslationResolver interface {
	ResolvePair(ctx context.Context, text string) (*PairResult, error)
}

// WordService handles the vocabulary of a chat
type WordService struct {
	wordRepo    repository.WordRepository
	stagedRepo  repository.StagedTranslationRepository
	pendingRepo repository.PendingInteractionRepository
	resolver    TranslationResolver
	logger      *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(
	wordRepo repository.WordRepository,
	stagedRepo repository.StagedTranslationRepository,
	pendingRepo repository.PendingInteractionRepository,
	resolver TranslationResolver,
	logger *zap.Logger,
) *WordService {
	return &WordService{
		wordRepo:    wordRepo,
		stagedRepo:  stagedRepo,
		pendingRepo: pendingRepo,
		resolver:    resolver,
		logger:      logger,
	}
}

// Translate resolves text and stages the pair for confirmation
func (s *WordService) Translate(ctx context.Context, chatID int64, text string) (*domain.StagedTranslation, domain.Language, error) {
	pair, err := s.resolver.ResolvePair(ctx, text)
	if err != nil {
		return nil, domain.LanguageUnknown, err
	}

	staged := &domain.StagedTranslation{
		ChatID:      chatID,
		English:     pair.English,
		Translation: pair.Translation,
		Method:      pair.Method,
	}
	if err := s.stagedRepo.Save(ctx, staged); err != nil {
		return nil, pair.Detected, fmt.Errorf("failed to stage translation: %w", err)
	}

	s.logger.Debug("Translation staged",
		zap.Int64("chat_id", chatID),
		zap.Int64("staged_id", staged.ID),
		zap.String("method", string(staged.Method)),
	)
	return staged, pair.Detected, nil
}

// AddedWord is a word saved from a staged translation
type AddedWord struct {
	Word   *domain.Word
	Method domain.TranslationMethod
}

// AddStaged consumes a staged translation and saves it to the vocabulary.
// A pair whose English or translation is already present returns domain.ErrAlreadyExists.
func (s *WordService) AddStaged(ctx context.Context, chatID, stagedID int64) (*AddedWord, error) {
	staged, err := s.takeStaged(ctx, chatID, stagedID)
	if err != nil {
		return nil, err
	}

	exists, err := s.wordRepo.ExistsByEnglishOrTranslation(ctx, chatID, staged.English, staged.Translation)
	if err != nil {
		return nil, fmt.Errorf("failed to check vocabulary: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyExists
	}

	word, err := s.saveWord(ctx, chatID, staged.English, staged.Translation)
	if err != nil {
		return nil, err
	}
	return &AddedWord{Word: word, Method: staged.Method}, nil
}

// RequestOwnTranslation makes the chat's next message the translation of a staged word
func (s *WordService) RequestOwnTranslation(ctx context.Context, chatID, stagedID int64) error {
	if err := s.pendingRepo.Delete(ctx, chatID); err != nil {
		return fmt.Errorf("failed to clear pending interaction: %w", err)
	}

	staged, err := s.stagedRepo.FindByID(ctx, stagedID)
	if err != nil {
		return err
	}
	if staged.ChatID != chatID {
		return domain.ErrNotFound
	}

	exists, err := s.wordRepo.ExistsByEnglish(ctx, chatID, staged.English)
	if err != nil {
		return fmt.Errorf("failed to check vocabulary: %w", err)
	}
	if exists {
		return domain.ErrAlreadyExists
	}

	return s.pendingRepo.Put(ctx, domain.PendingInteraction{
		ChatID:  chatID,
		Kind:    domain.InteractionOwnTranslation,
		Payload: stagedID,
	})
}

// AddOwnTranslation consumes a staged translation and saves its English word
// with the translation supplied by the user
func (s *WordService) AddOwnTranslation(ctx context.Context, chatID, stagedID int64, translation string) (*AddedWord, error) {
	staged, err := s.takeStaged(ctx, chatID, stagedID)
	if err != nil {
		return nil, err
	}

	exists, err := s.wordRepo.ExistsByEnglishOrTranslation(ctx, chatID, staged.English, translation)
	if err != nil {
		return nil, fmt.Errorf("failed to check vocabulary: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyExists
	}

	word, err := s.saveWord(ctx, chatID, staged.English, translation)
	if err != nil {
		return nil, err
	}
	return &AddedWord{Word: word, Method: staged.Method}, nil
}

// Vocabulary returns the chat's words that are not learned yet
func (s *WordService) Vocabulary(ctx context.Context, chatID int64) ([]domain.Word, error) {
	return s.wordRepo.FindByChatIDAndLearned(ctx, chatID, false)
}

// Learned returns the chat's learned words
func (s *WordService) Learned(ctx context.Context, chatID int64) ([]domain.Word, error) {
	return s.wordRepo.FindByChatIDAndLearned(ctx, chatID, true)
}

// ClearVocabulary deletes all words of the chat
func (s *WordService) ClearVocabulary(ctx context.Context, chatID int64) error {
	if err := s.wordRepo.DeleteByChatID(ctx, chatID); err != nil {
		return err
	}
	s.logger.Info("Vocabulary cleared", zap.Int64("chat_id", chatID))
	return nil
}

func (s *WordService) takeStaged(ctx context.Context, chatID, stagedID int64) (*domain.StagedTranslation, error) {
	staged, err := s.stagedRepo.Take(ctx, chatID, stagedID)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.Warn("Staged translation not found for chat",
			zap.Int64("chat_id", chatID),
			zap.Int64("staged_id", stagedID),
		)
	}
	return staged, err
}

func (s *WordService) saveWord(ctx context.Context, chatID int64, english, translation string) (*domain.Word, error) {
	if english == "" || translation == "" {
		return nil, errors.New("word and translation cannot be empty")
	}

	word := &domain.Word{
		ChatID:      chatID,
		English:     english,
		Translation: translation,
		Score:       domain.MinScore,
	}
	if err := s.wordRepo.Save(ctx, word); err != nil {
		return nil, fmt.Errorf("failed to save word: %w", err)
	}

	s.logger.Info("Word added to vocabulary",
		zap.Int64("chat_id", chatID),
		zap.Int64("word_id", word.ID),
	)
	return word, nil
}
