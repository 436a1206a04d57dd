package driving

import (
	"context"
	"time"

	"github.com/rem-labs/rem-core/internal/core/domain"
)

// RecordingService exposes read access to a tenant's recordings
type RecordingService interface {
	// List returns a tenant's searchable recordings, most recent first
	List(ctx context.Context, tenantID string, from, to *time.Time, limit int) ([]domain.RecordingRecord, error)

	// GetTranscript returns the full typed transcript for one recording
	GetTranscript(ctx context.Context, tenantID, recordingID string) (*domain.Transcript, error)
}
