package service

import (
	"context"
	"errors"
	"strings"

	"vocabu/internal/domain"
	"vocabu/internal/metrics"
	"vocabu/internal/repository"

	"go.uber.org/zap"
)

// MaxTranslateWords limits translate requests
const MaxTranslateWords = 3

// Resolver translates text using the dictionary first and the external translator second
type Resolver struct {
	dictRepo   repository.DictionaryRepository
	translator Translator
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewResolver creates a new translation resolver
func NewResolver(
	dictRepo repository.DictionaryRepository,
	translator Translator,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Resolver {
	return &Resolver{
		dictRepo:   dictRepo,
		translator: translator,
		metrics:    m,
		logger:     logger,
	}
}

// Resolve translates text from source to target and records the method used.
// Equal languages return the text unchanged with MethodNone.
func (r *Resolver) Resolve(ctx context.Context, text string, source, target domain.Language) (domain.Translation, error) {
	if source == target {
		return domain.Translation{Text: text, Method: domain.MethodNone}, nil
	}

	translated, err := r.dictRepo.FindTranslation(ctx, text)
	switch {
	case err == nil && translated != "":
		r.logger.Debug("Word found in dictionary", zap.String("text", text), zap.String("translation", translated))
		r.metrics.Translation(string(domain.MethodDictionary))
		return domain.Translation{Text: translated, Method: domain.MethodDictionary}, nil
	case err == nil, errors.Is(err, domain.ErrNotFound):
		r.logger.Debug("Word not found in dictionary, using translator", zap.String("text", text))
	default:
		r.logger.Warn("Dictionary lookup failed, using translator", zap.String("text", text), zap.Error(err))
	}

	translated, err = r.translator.Translate(ctx, text, string(source), string(target))
	if err != nil {
		var te *domain.TranslationError
		if errors.As(err, &te) {
			return domain.Translation{}, err
		}
		return domain.Translation{}, domain.NewTranslationError(domain.KindUpstream, "Translation failed", err)
	}
	if translated == "" {
		return domain.Translation{}, domain.NewTranslationError(domain.KindNotFound, "Translation not found for word: "+text, nil)
	}

	r.metrics.Translation(string(domain.MethodExternal))
	return domain.Translation{Text: translated, Method: domain.MethodExternal}, nil
}

// PairResult is a text resolved into both languages
type PairResult struct {
	Detected    domain.Language
	English     string
	Translation string
	Method      domain.TranslationMethod
}

// ResolvePair detects the language of text and resolves it into English and Ukrainian.
// The method is taken from the first direction that needed a translation.
func (r *Resolver) ResolvePair(ctx context.Context, text string) (*PairResult, error) {
	text = strings.TrimSpace(text)
	if len(strings.Fields(text)) > MaxTranslateWords {
		return nil, domain.ErrTooManyWords
	}

	detected := domain.DetectLanguage(text)
	if detected == domain.LanguageUnknown {
		return nil, domain.ErrUnsupportedLanguage
	}

	english, err := r.Resolve(ctx, text, detected, domain.LanguageEnglish)
	if err != nil {
		return nil, err
	}
	ukrainian, err := r.Resolve(ctx, text, detected, domain.LanguageUkrainian)
	if err != nil {
		return nil, err
	}

	method := english.Method
	if method == domain.MethodNone {
		method = ukrainian.Method
	}

	return &PairResult{
		Detected:    detected,
		English:     english.Text,
		Translation: ukrainian.Text,
		Method:      method,
	}, nil
}
