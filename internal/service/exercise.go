package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"vocabu/internal/domain"
	"vocabu/internal/metrics"
	"vocabu/internal/repository"

	"go.uber.org/zap"
)

const (
	correctIncrement = 10
	wrongDecrement   = 10
	skipDecrement    = 5
	// freshCorrectScore is the score of a word created by a first correct answer
	freshCorrectScore = 5

	dictionaryDistractorAttempts = 10
)

// ExerciseOutcome is the resolution of an exercise
type ExerciseOutcome string

const (
	ExerciseCorrect ExerciseOutcome = "correct"
	ExerciseWrong   ExerciseOutcome = "wrong"
	ExerciseSkipped ExerciseOutcome = "skipped"
)

// ExerciseResult describes an answered or skipped exercise
type ExerciseResult struct {
	Exercise *domain.Exercise
	Word     *domain.Word
	Outcome  ExerciseOutcome
	// Learned is set when the answer made the word learned
	Learned bool
}

// ExerciseService builds multiple-choice exercises and scores answers
type ExerciseService struct {
	wordRepo     repository.WordRepository
	dictRepo     repository.DictionaryRepository
	exerciseRepo repository.ExerciseRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
	intn         func(n int) int
}

// NewExerciseService creates a new exercise service
func NewExerciseService(
	wordRepo repository.WordRepository,
	dictRepo repository.DictionaryRepository,
	exerciseRepo repository.ExerciseRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ExerciseService {
	return &ExerciseService{
		wordRepo:     wordRepo,
		dictRepo:     dictRepo,
		exerciseRepo: exerciseRepo,
		metrics:      m,
		logger:       logger,
		intn:         rand.Intn,
	}
}

// StartOrResume returns the chat's active exercise or creates a new one
func (s *ExerciseService) StartOrResume(ctx context.Context, chatID int64) (*domain.Exercise, error) {
	active, err := s.exerciseRepo.Find(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercise: %w", err)
	}
	if active != nil {
		s.logger.Debug("Resuming exercise", zap.Int64("chat_id", chatID))
		return active, nil
	}

	words, err := s.wordRepo.FindByChatIDAndLearned(ctx, chatID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	if len(words) == 0 {
		return nil, domain.ErrEmptyVocabulary
	}

	exercise, err := s.build(ctx, chatID, words)
	if err != nil {
		return nil, err
	}

	created, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, fmt.Errorf("failed to save exercise: %w", err)
	}
	if !created {
		// a concurrent request won the race
		winner, err := s.exerciseRepo.Find(ctx, chatID)
		if err != nil {
			return nil, fmt.Errorf("failed to load exercise: %w", err)
		}
		if winner == nil {
			// and the winner was already resolved
			return nil, domain.ErrNotFound
		}
		return winner, nil
	}

	s.logger.Debug("Exercise created",
		zap.Int64("chat_id", chatID),
		zap.Int64("word_id", exercise.WordID),
	)
	return exercise, nil
}

func (s *ExerciseService) build(ctx context.Context, chatID int64, words []domain.Word) (*domain.Exercise, error) {
	target := s.pop(&words)
	engToTarget := s.intn(2) == 0

	side := func(w domain.Word) string {
		if engToTarget {
			return w.Translation
		}
		return w.English
	}

	correct := domain.NormalizeText(side(target))
	correctIndex := s.intn(domain.OptionCount - 1)
	seen := map[string]bool{correct: true}

	exercise := &domain.Exercise{
		ChatID:      chatID,
		WordID:      target.ID,
		EngToTarget: engToTarget,
		English:     target.English,
		Translation: target.Translation,
		Options:     make([]string, domain.OptionCount),
		Outcomes:    make([]domain.Outcome, domain.OptionCount),
	}

	for i := 0; i < domain.OptionCount; i++ {
		if i == correctIndex {
			exercise.Options[i] = correct
			exercise.Outcomes[i] = domain.OutcomeCorrect
			continue
		}

		distractor, err := s.distractor(ctx, &words, side, seen)
		if err != nil {
			return nil, err
		}
		seen[distractor] = true
		exercise.Options[i] = distractor
		exercise.Outcomes[i] = domain.OutcomeWrong
	}

	return exercise, nil
}

// distractor draws from the remaining words first and the dictionary second
func (s *ExerciseService) distractor(
	ctx context.Context,
	words *[]domain.Word,
	side func(domain.Word) string,
	seen map[string]bool,
) (string, error) {
	for len(*words) > 0 {
		option := domain.NormalizeText(side(s.pop(words)))
		if option != "" && !seen[option] {
			return option, nil
		}
	}

	for attempt := 0; attempt < dictionaryDistractorAttempts; attempt++ {
		random, err := s.dictRepo.FindRandom(ctx)
		if errors.Is(err, domain.ErrNotFound) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to load dictionary word: %w", err)
		}
		option := domain.NormalizeText(side(random.ToWord()))
		if option != "" && !seen[option] {
			return option, nil
		}
	}

	return "", domain.ErrNotEnoughOptions
}

// pop removes and returns a random element
func (s *ExerciseService) pop(words *[]domain.Word) domain.Word {
	list := *words
	i := s.intn(len(list))
	w := list[i]
	list[i] = list[len(list)-1]
	*words = list[:len(list)-1]
	return w
}

// Answer resolves the chat's exercise with the tapped outcome
func (s *ExerciseService) Answer(ctx context.Context, chatID int64, outcome domain.Outcome) (*ExerciseResult, error) {
	if outcome == domain.OutcomeCorrect {
		return s.resolve(ctx, chatID, ExerciseCorrect)
	}
	return s.resolve(ctx, chatID, ExerciseWrong)
}

// Skip resolves the chat's exercise without an answer
func (s *ExerciseService) Skip(ctx context.Context, chatID int64) (*ExerciseResult, error) {
	return s.resolve(ctx, chatID, ExerciseSkipped)
}

func (s *ExerciseService) resolve(ctx context.Context, chatID int64, outcome ExerciseOutcome) (*ExerciseResult, error) {
	exercise, err := s.exerciseRepo.Take(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to take exercise: %w", err)
	}
	if exercise == nil {
		return nil, domain.ErrNotFound
	}

	word, err := s.wordRepo.FindByID(ctx, exercise.WordID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		word = &domain.Word{
			ChatID:      chatID,
			English:     exercise.English,
			Translation: exercise.Translation,
			Score:       domain.MinScore,
		}
		if outcome == ExerciseCorrect {
			word.Score = freshCorrectScore
		}
	case err != nil:
		return nil, fmt.Errorf("failed to load word: %w", err)
	default:
		word = s.score(word, outcome)
	}

	result := &ExerciseResult{
		Exercise: exercise,
		Word:     word,
		Outcome:  outcome,
		Learned:  outcome == ExerciseCorrect && word.Learned,
	}

	if err := s.wordRepo.Save(ctx, word); err != nil {
		return nil, fmt.Errorf("failed to save word: %w", err)
	}

	s.metrics.ExerciseOutcome(string(outcome))
	s.logger.Debug("Exercise resolved",
		zap.Int64("chat_id", chatID),
		zap.Int64("word_id", word.ID),
		zap.String("outcome", string(outcome)),
		zap.Int("score", word.Score),
	)
	return result, nil
}

func (s *ExerciseService) score(word *domain.Word, outcome ExerciseOutcome) *domain.Word {
	switch outcome {
	case ExerciseCorrect:
		word.IncrementScore(correctIncrement)
	case ExerciseWrong:
		word.DecrementScore(wrongDecrement)
	case ExerciseSkipped:
		word.DecrementScore(skipDecrement)
	}
	return word
}
