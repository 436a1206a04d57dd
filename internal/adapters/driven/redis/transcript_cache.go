package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rem-labs/rem-core/internal/core/domain"
	"github.com/rem-labs/rem-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.TranscriptStore = (*TranscriptCache)(nil)

const transcriptPrefix = "transcript:"

// DefaultTranscriptTTL is how long cached transcripts live. Transcripts
// are immutable once written, so the TTL only bounds memory use.
const DefaultTranscriptTTL = 1 * time.Hour

// TranscriptCache is a read-through cache in front of a TranscriptStore.
// Cache failures are never surfaced; on any Redis error the call falls
// back to the underlying store.
type TranscriptCache struct {
	client *redis.Client
	inner  driven.TranscriptStore
	ttl    time.Duration
	logger *slog.Logger
}

// NewTranscriptCache creates a Redis-backed read-through transcript cache
func NewTranscriptCache(client *redis.Client, inner driven.TranscriptStore, ttl time.Duration, logger *slog.Logger) *TranscriptCache {
	if ttl <= 0 {
		ttl = DefaultTranscriptTTL
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TranscriptCache{
		client: client,
		inner:  inner,
		ttl:    ttl,
		logger: logger,
	}
}

// Fetch returns the cached transcript when present, otherwise reads
// through to the underlying store and populates the cache.
func (c *TranscriptCache) Fetch(ctx context.Context, storageKey string) (*domain.Transcript, error) {
	data, err := c.client.Get(ctx, transcriptPrefix+storageKey).Bytes()
	if err == nil {
		var transcript domain.Transcript
		if jsonErr := json.Unmarshal(data, &transcript); jsonErr == nil {
			return &transcript, nil
		}
		// Corrupt cache entry, drop it and fall through to the store
		c.client.Del(ctx, transcriptPrefix+storageKey)
	} else if err != redis.Nil {
		c.logger.Warn("transcript cache read failed", "key", storageKey, "error", err)
	}

	transcript, err := c.inner.Fetch(ctx, storageKey)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(transcript); err == nil {
		if err := c.client.Set(ctx, transcriptPrefix+storageKey, data, c.ttl).Err(); err != nil {
			c.logger.Warn("transcript cache write failed", "key", storageKey, "error", err)
		}
	}

	return transcript, nil
}
