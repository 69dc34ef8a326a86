package service

import (
	"context"

	"vocabu/internal/domain"
	"vocabu/internal/repository"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// TranslatorAdmin exposes translator maintenance operations
type TranslatorAdmin interface {
	Status(ctx context.Context) TranslatorStatus
	ClearCache()
	CacheStats() CacheStats
}

// StatsService serves admin reports
type StatsService struct {
	userRepo   repository.UserRepository
	dictRepo   repository.DictionaryRepository
	translator TranslatorAdmin
	logger     *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(
	userRepo repository.UserRepository,
	dictRepo repository.DictionaryRepository,
	translator TranslatorAdmin,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		userRepo:   userRepo,
		dictRepo:   dictRepo,
		translator: translator,
		logger:     logger,
	}
}

// DictionarySize returns the number of curated pairs
func (s *StatsService) DictionarySize(ctx context.Context) (int, error) {
	return s.dictRepo.Count(ctx)
}

// UserCount returns the number of registered users
func (s *StatsService) UserCount(ctx context.Context) (int, error) {
	return s.userRepo.Count(ctx)
}

// Users returns registered users, banned ones last
func (s *StatsService) Users(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	isBanned := func(u domain.User, _ int) bool { return u.Banned }
	return append(lo.Reject(users, isBanned), lo.Filter(users, isBanned)...), nil
}

// TranslatorStatus probes the external translator
func (s *StatsService) TranslatorStatus(ctx context.Context) TranslatorStatus {
	return s.translator.Status(ctx)
}

// CacheStats reports the translation cache
func (s *StatsService) CacheStats() CacheStats {
	return s.translator.CacheStats()
}

// ClearCache empties the translation cache
func (s *StatsService) ClearCache() {
	s.translator.ClearCache()
}
