package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rem-labs/rem-core/internal/core/domain"
	"github.com/rem-labs/rem-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.TranscriptStore = (*TranscriptStore)(nil)

// TranscriptStore implements driven.TranscriptStore using PostgreSQL JSONB
type TranscriptStore struct {
	db *DB
}

// NewTranscriptStore creates a new TranscriptStore
func NewTranscriptStore(db *DB) *TranscriptStore {
	return &TranscriptStore{db: db}
}

// Fetch retrieves one recording's transcript document. A document that
// fails to decode or validate is reported as domain.ErrCorruptData so the
// caller can skip the recording.
func (s *TranscriptStore) Fetch(ctx context.Context, storageKey string) (*domain.Transcript, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM transcripts WHERE storage_key = $1`, storageKey,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch transcript %s: %w", storageKey, err)
	}

	var transcript domain.Transcript
	if err := json.Unmarshal(raw, &transcript); err != nil {
		return nil, fmt.Errorf("%w: decode transcript %s: %v", domain.ErrCorruptData, storageKey, err)
	}
	if err := transcript.Validate(); err != nil {
		return nil, fmt.Errorf("transcript %s: %w", storageKey, err)
	}

	return &transcript, nil
}

// Put stores a transcript document under the given storage key.
// Existing documents are replaced.
func (s *TranscriptStore) Put(ctx context.Context, storageKey string, transcript *domain.Transcript) error {
	raw, err := json.Marshal(transcript)
	if err != nil {
		return fmt.Errorf("encode transcript %s: %w", storageKey, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO transcripts (storage_key, document)
		VALUES ($1, $2)
		ON CONFLICT (storage_key) DO UPDATE SET document = EXCLUDED.document
	`, storageKey, raw)
	if err != nil {
		return fmt.Errorf("store transcript %s: %w", storageKey, err)
	}

	return nil
}
