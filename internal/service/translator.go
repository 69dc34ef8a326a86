package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"vocabu/internal/domain"
	"vocabu/internal/metrics"

	"go.uber.org/zap"
)

const (
	// DefaultTranslateURL takes source language, target language and escaped text
	DefaultTranslateURL = "https://translate.googleapis.com/translate_a/single?client=gtx&sl=%s&tl=%s&dt=t&q=%s"
	// MaxTranslateLength is the longest text accepted by the translator
	MaxTranslateLength = 5000
	// ProviderName is reported in cache statistics
	ProviderName = "Google Translate"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	referer   = "https://translate.google.com/"
)

// Translator translates text between language codes
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// TranslatorStatus is the result of an availability probe
type TranslatorStatus struct {
	Available    bool
	ResponseTime time.Duration
	Err          error
}

// CacheStats describes the translation cache
type CacheStats struct {
	Size           int
	CachingEnabled bool
	Provider       string
}

// GoogleTranslator calls the public Google Translate endpoint and caches results
type GoogleTranslator struct {
	client      *http.Client
	urlTemplate string
	cache       *TranslationCache
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewGoogleTranslator creates a translator. An empty urlTemplate uses DefaultTranslateURL.
func NewGoogleTranslator(
	urlTemplate string,
	timeout time.Duration,
	cache *TranslationCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) *GoogleTranslator {
	if urlTemplate == "" {
		urlTemplate = DefaultTranslateURL
	}
	return &GoogleTranslator{
		client:      &http.Client{Timeout: timeout},
		urlTemplate: urlTemplate,
		cache:       cache,
		metrics:     m,
		logger:      logger,
	}
}

// Translate returns the cached translation or fetches it from upstream
func (t *GoogleTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.NewTranslationError(domain.KindValidation, "Text cannot be empty", nil)
	}
	if utf8.RuneCountInString(text) > MaxTranslateLength {
		return "", domain.NewTranslationError(domain.KindValidation,
			fmt.Sprintf("Text too long. Supports up to %d characters.", MaxTranslateLength), nil)
	}

	if cached, ok := t.cache.Get(text, sourceLang, targetLang); ok {
		t.metrics.CacheLookup(true)
		t.logger.Debug("Returning cached translation", zap.String("text", text))
		return cached, nil
	}
	t.metrics.CacheLookup(false)

	translated, err := t.fetch(ctx, text, sourceLang, targetLang)
	if err != nil {
		return "", err
	}

	t.cache.Set(text, sourceLang, targetLang, translated)
	t.logger.Debug("Translation successful",
		zap.String("text", text),
		zap.String("translation", translated),
	)
	return translated, nil
}

func (t *GoogleTranslator) fetch(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	endpoint := fmt.Sprintf(t.urlTemplate,
		url.QueryEscape(sourceLang), url.QueryEscape(targetLang), url.QueryEscape(text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", domain.NewTranslationError(domain.KindUpstream, "Translation failed", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", referer)

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		t.metrics.UpstreamCall(0, time.Since(start))
		return "", domain.NewTranslationError(domain.KindUpstream, "Translation failed", err)
	}
	defer resp.Body.Close()
	t.metrics.UpstreamCall(resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewTranslationError(domain.KindUpstream, "Translation failed", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", domain.NewTranslationError(domain.KindRateLimited,
			"Translation failed: Rate limit exceeded. Please try again later.", nil)
	default:
		return "", domain.NewTranslationError(domain.KindUpstream,
			fmt.Sprintf("Translation failed: HTTP %d: %s", resp.StatusCode, body), nil)
	}

	translated, err := parseTranslation(string(body))
	if err != nil {
		t.logger.Error("Failed to parse translation response", zap.String("body", string(body)))
		return "", domain.NewTranslationError(domain.KindParse, "Translation parsing failed", err)
	}
	return translated, nil
}

// Status probes the translator with a fixed request
func (t *GoogleTranslator) Status(ctx context.Context) TranslatorStatus {
	start := time.Now()
	result, err := t.Translate(ctx, "Hello", "en", "es")
	status := TranslatorStatus{
		Available:    err == nil && strings.TrimSpace(result) != "",
		ResponseTime: time.Since(start),
		Err:          err,
	}
	if err != nil {
		t.logger.Warn("Translator availability check failed", zap.Error(err))
	}
	return status
}

// ClearCache empties the translation cache
func (t *GoogleTranslator) ClearCache() {
	t.cache.Clear()
	t.logger.Info("Translation cache cleared")
}

// CacheStats reports the cache state
func (t *GoogleTranslator) CacheStats() CacheStats {
	return CacheStats{
		Size:           t.cache.Size(),
		CachingEnabled: true,
		Provider:       ProviderName,
	}
}
