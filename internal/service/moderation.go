package service

import (
	"context"
	"errors"
	"fmt"

	"vocabu/internal/domain"
	"vocabu/internal/repository"

	"go.uber.org/zap"
)

// Suggestion is a word a user added from an external translation
type Suggestion struct {
	UserID   int64
	UserName string
	Word     *domain.Word
}

// BanResult reports a ban or unban request
type BanResult struct {
	UserID   int64
	UserName string
	Exists   bool
}

// ModerationService handles word suggestions and user bans
type ModerationService struct {
	userRepo repository.UserRepository
	wordRepo repository.WordRepository
	dictRepo repository.DictionaryRepository
	logger   *zap.Logger
}

// NewModerationService creates a new moderation service
func NewModerationService(
	userRepo repository.UserRepository,
	wordRepo repository.WordRepository,
	dictRepo repository.DictionaryRepository,
	logger *zap.Logger,
) *ModerationService {
	return &ModerationService{
		userRepo: userRepo,
		wordRepo: wordRepo,
		dictRepo: dictRepo,
		logger:   logger,
	}
}

// Suggest builds a suggestion for words resolved by the external translator.
// It returns nil when no suggestion should reach the admin.
func (s *ModerationService) Suggest(ctx context.Context, chatID int64, added *AddedWord) (*Suggestion, error) {
	if added.Method != domain.MethodExternal {
		return nil, nil
	}

	banned, err := s.userRepo.IsBanned(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to check ban: %w", err)
	}
	if banned {
		s.logger.Debug("Skipping suggestion from banned user", zap.Int64("chat_id", chatID))
		return nil, nil
	}

	user, err := s.userRepo.FindByChatID(ctx, chatID)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.Warn("Skipping suggestion from unregistered user", zap.Int64("chat_id", chatID))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return &Suggestion{UserID: user.ID, UserName: user.UserName, Word: added.Word}, nil
}

// ApproveWord copies a vocabulary word into the curated dictionary
func (s *ModerationService) ApproveWord(ctx context.Context, wordID int64) (*domain.DictionaryWord, error) {
	word, err := s.wordRepo.FindByID(ctx, wordID)
	if err != nil {
		return nil, err
	}

	entry := &domain.DictionaryWord{English: word.English, Translation: word.Translation}
	if err := s.dictRepo.Save(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save dictionary word: %w", err)
	}

	s.logger.Info("Word added to dictionary",
		zap.Int64("word_id", wordID),
		zap.Int64("dictionary_id", entry.ID),
	)
	return entry, nil
}

// Ban sets the ban flag. The update runs even for unknown ids.
func (s *ModerationService) Ban(ctx context.Context, userID int64) (*BanResult, error) {
	return s.setBanned(ctx, userID, true)
}

// Unban clears the ban flag. The update runs even for unknown ids.
func (s *ModerationService) Unban(ctx context.Context, userID int64) (*BanResult, error) {
	return s.setBanned(ctx, userID, false)
}

func (s *ModerationService) setBanned(ctx context.Context, userID int64, banned bool) (*BanResult, error) {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	update := s.userRepo.Unban
	if banned {
		update = s.userRepo.Ban
	}
	if err := update(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to update ban: %w", err)
	}

	result := &BanResult{UserID: userID, Exists: exists}
	if !exists {
		s.logger.Warn("Ban target does not exist", zap.Int64("user_id", userID))
		return result, nil
	}

	name, err := s.userRepo.FindUserNameByID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to load user name: %w", err)
	}
	result.UserName = name

	s.logger.Info("User ban updated", zap.Int64("user_id", userID), zap.Bool("banned", banned))
	return result, nil
}
