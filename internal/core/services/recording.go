package services

import (
	"context"
	"time"

	"github.com/rem-labs/rem-core/internal/core/domain"
	"github.com/rem-labs/rem-core/internal/core/ports/driven"
	"github.com/rem-labs/rem-core/internal/core/ports/driving"
)

// Ensure recordingService implements RecordingService
var _ driving.RecordingService = (*recordingService)(nil)

// recordingService implements read access to a tenant's recordings
type recordingService struct {
	index driven.RecordingIndex
	store driven.TranscriptStore
}

// NewRecordingService creates a new RecordingService
func NewRecordingService(index driven.RecordingIndex, store driven.TranscriptStore) driving.RecordingService {
	return &recordingService{
		index: index,
		store: store,
	}
}

// List returns a tenant's searchable recordings, most recent first
func (s *recordingService) List(ctx context.Context, tenantID string, from, to *time.Time, limit int) ([]domain.RecordingRecord, error) {
	if limit <= 0 || limit > domain.MaxCandidateRecordings {
		limit = domain.MaxCandidateRecordings
	}
	return s.index.ListSearchable(ctx, tenantID, from, to, limit)
}

// GetTranscript returns the full typed transcript for one recording.
// The recording must belong to the tenant and be fully processed.
func (s *recordingService) GetTranscript(ctx context.Context, tenantID, recordingID string) (*domain.Transcript, error) {
	rec, err := s.index.Get(ctx, tenantID, recordingID)
	if err != nil {
		return nil, err
	}
	if !rec.IsSearchable() {
		return nil, domain.ErrNotFound
	}
	return s.store.Fetch(ctx, rec.TranscriptKey)
}
