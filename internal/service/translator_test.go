package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"vocabu/internal/domain"
	"vocabu/internal/metrics"
	"vocabu/internal/testutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTranslator(t *testing.T, handler http.HandlerFunc) (*GoogleTranslator, *int32) {
	t.Helper()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	translator := NewGoogleTranslator(
		server.URL+"/translate_a/single?client=gtx&sl=%s&tl=%s&dt=t&q=%s",
		time.Second,
		NewTranslationCache(),
		metrics.New(prometheus.NewRegistry()),
		testutil.NewTestLogger(),
	)
	return translator, &calls
}

func TestGoogleTranslator_Translate(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		status        int
		body          string
		expected      string
		expectedKind  domain.TranslationErrorKind
		expectedCalls int32
	}{
		{
			name:          "success",
			text:          "hello",
			status:        http.StatusOK,
			body:          `[[["привіт","hello",null,null,10]],null,"en"]`,
			expected:      "привіт",
			expectedCalls: 1,
		},
		{
			name:          "fallback decode",
			text:          "good morning",
			status:        http.StatusOK,
			body:          `[[[null,"x"],["Добрий ранок","good morning"]],null,"en"]`,
			expected:      "Добрий ранок",
			expectedCalls: 1,
		},
		{
			name:          "rate limited",
			text:          "hello",
			status:        http.StatusTooManyRequests,
			body:          "slow down",
			expectedKind:  domain.KindRateLimited,
			expectedCalls: 1,
		},
		{
			name:          "upstream error",
			text:          "hello",
			status:        http.StatusInternalServerError,
			body:          "boom",
			expectedKind:  domain.KindUpstream,
			expectedCalls: 1,
		},
		{
			name:          "malformed body",
			text:          "hello",
			status:        http.StatusOK,
			body:          "<html></html>",
			expectedKind:  domain.KindParse,
			expectedCalls: 1,
		},
		{
			name:          "empty text",
			text:          "  ",
			expectedKind:  domain.KindValidation,
			expectedCalls: 0,
		},
		{
			name:          "text too long",
			text:          strings.Repeat("a", MaxTranslateLength+1),
			expectedKind:  domain.KindValidation,
			expectedCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translator, calls := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			result, err := translator.Translate(context.Background(), tt.text, "en", "uk")

			if tt.expectedKind != "" {
				assert.True(t, domain.IsTranslationKind(err, tt.expectedKind), "unexpected error: %v", err)
				assert.Equal(t, 0, translator.CacheStats().Size)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
				assert.Equal(t, 1, translator.CacheStats().Size)
			}
			assert.Equal(t, tt.expectedCalls, atomic.LoadInt32(calls))
		})
	}
}

func TestGoogleTranslator_Request(t *testing.T) {
	translator, _ := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en", r.URL.Query().Get("sl"))
		assert.Equal(t, "uk", r.URL.Query().Get("tl"))
		assert.Equal(t, "good morning", r.URL.Query().Get("q"))
		assert.Equal(t, referer, r.Header.Get("Referer"))
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		fmt.Fprint(w, `[[["Добрий ранок","good morning"]]]`)
	})

	_, err := translator.Translate(context.Background(), "good morning", "en", "uk")
	assert.NoError(t, err)
}

func TestGoogleTranslator_RateLimitMessage(t *testing.T) {
	translator, _ := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := translator.Translate(context.Background(), "hello", "en", "uk")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Rate limit exceeded. Please try again later.")
}

func TestGoogleTranslator_UpstreamMessage(t *testing.T) {
	translator, _ := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "bad gateway")
	})

	_, err := translator.Translate(context.Background(), "hello", "en", "uk")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502: bad gateway")
}

func TestGoogleTranslator_CacheHit(t *testing.T) {
	translator, calls := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[[["привіт","hello"]]]`)
	})

	first, err := translator.Translate(context.Background(), "hello", "en", "uk")
	require.NoError(t, err)
	second, err := translator.Translate(context.Background(), "hello", "en", "uk")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))

	translator.ClearCache()
	_, err = translator.Translate(context.Background(), "hello", "en", "uk")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestGoogleTranslator_Timeout(t *testing.T) {
	translator, _ := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	translator.client.Timeout = 50 * time.Millisecond

	_, err := translator.Translate(context.Background(), "hello", "en", "uk")
	assert.True(t, domain.IsTranslationKind(err, domain.KindUpstream))
}

func TestGoogleTranslator_Status(t *testing.T) {
	translator, _ := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Hello", r.URL.Query().Get("q"))
		assert.Equal(t, "es", r.URL.Query().Get("tl"))
		fmt.Fprint(w, `[[["Hola","Hello"]]]`)
	})

	status := translator.Status(context.Background())
	assert.True(t, status.Available)
	assert.NoError(t, status.Err)

	stats := translator.CacheStats()
	assert.Equal(t, CacheStats{Size: 1, CachingEnabled: true, Provider: ProviderName}, stats)
}

func TestGoogleTranslator_StatusOffline(t *testing.T) {
	translator, _ := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	status := translator.Status(context.Background())
	assert.False(t, status.Available)
	assert.Error(t, status.Err)
}
