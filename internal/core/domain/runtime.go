package domain

import "sync"

// RuntimeConfig tracks which AI capabilities are available at runtime.
// Availability changes when providers are reconfigured via the settings API.
// Thread-safe for concurrent access.
type RuntimeConfig struct {
	mu sync.RWMutex

	// Static (set at startup, read-only)
	TranscriptCacheBackend string // "redis" or "none"

	// Dynamic capability flags (updated when AI services change)
	embeddingAvailable bool
	llmAvailable       bool
}

// NewRuntimeConfig creates a new RuntimeConfig with initial values
func NewRuntimeConfig(cacheBackend string) *RuntimeConfig {
	return &RuntimeConfig{
		TranscriptCacheBackend: cacheBackend,
	}
}

// EmbeddingAvailable returns whether the embedding service is available
func (c *RuntimeConfig) EmbeddingAvailable() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.embeddingAvailable
}

// LLMAvailable returns whether the LLM service is available
func (c *RuntimeConfig) LLMAvailable() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.llmAvailable
}

// SetEmbeddingAvailable updates the embedding availability flag
func (c *RuntimeConfig) SetEmbeddingAvailable(available bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.embeddingAvailable = available
}

// SetLLMAvailable updates the LLM availability flag
func (c *RuntimeConfig) SetLLMAvailable(available bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.llmAvailable = available
}

// EffectiveSearchMode returns the best search mode currently possible
func (c *RuntimeConfig) EffectiveSearchMode() SearchMode {
	if c.EmbeddingAvailable() {
		return SearchModeHybrid
	}
	return SearchModeKeywordOnly
}

// CanSynthesizeAnswers returns true if answer generation is available
func (c *RuntimeConfig) CanSynthesizeAnswers() bool {
	return c.LLMAvailable()
}
