package driven

import (
	"context"
	"time"

	"github.com/rem-labs/rem-core/internal/core/domain"
)

// RecordingIndex queries recording metadata for candidate selection
type RecordingIndex interface {
	// ListSearchable returns fully processed recordings for a tenant,
	// optionally bounded to an inclusive time range, ordered by StartedAt
	// descending. At most max records are returned; when more exist the
	// most recent take priority so that capped queries degrade gracefully.
	ListSearchable(ctx context.Context, tenantID string, from, to *time.Time, max int) ([]domain.RecordingRecord, error)

	// Get retrieves a single recording record
	Get(ctx context.Context, tenantID, recordingID string) (*domain.RecordingRecord, error)
}
