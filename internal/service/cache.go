package service

import (
	"hash/fnv"
	"strconv"
	"sync"
)

// TranslationCache keeps external translations in memory.
// It is unbounded and safe for concurrent use.
type TranslationCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewTranslationCache creates an empty cache
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{entries: make(map[string]string)}
}

func cacheKey(text, sourceLang, targetLang string) string {
	h := fnv.New64a()
	h.Write([]byte(text))
	return strconv.FormatUint(h.Sum64(), 16) + "|" + sourceLang + "|" + targetLang
}

// Get returns a cached translation
func (c *TranslationCache) Get(text, sourceLang, targetLang string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	translation, ok := c.entries[cacheKey(text, sourceLang, targetLang)]
	return translation, ok
}

// Set stores a translation
func (c *TranslationCache) Set(text, sourceLang, targetLang, translation string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey(text, sourceLang, targetLang)] = translation
}

// Clear removes all entries
func (c *TranslationCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]string)
}

// Size returns the number of cached translations
func (c *TranslationCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
