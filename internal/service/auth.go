package service

import (
	"context"
	"fmt"

	"vocabu/internal/domain"
	"vocabu/internal/repository"

	"go.uber.org/zap"
)

// AuthService handles user registration and admin checks
type AuthService struct {
	userRepo    repository.UserRepository
	adminChatID int64
	logger      *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, adminChatID int64, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		adminChatID: adminChatID,
		logger:      logger,
	}
}

// IsAdmin checks if the chat is the admin chat
func (s *AuthService) IsAdmin(chatID int64) bool {
	return chatID == s.adminChatID
}

// AdminChatID returns the chat that receives moderation requests
func (s *AuthService) AdminChatID() int64 {
	return s.adminChatID
}

// EnsureUserExists registers the user on first contact.
// It reports whether a new user was created.
func (s *AuthService) EnsureUserExists(ctx context.Context, user *domain.User) (bool, error) {
	exists, err := s.userRepo.ExistsByChatID(ctx, user.ChatID)
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	if exists {
		return false, nil
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return false, fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.Int64("chat_id", user.ChatID),
		zap.String("user_name", user.UserName),
	)
	return true, nil
}
