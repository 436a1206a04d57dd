package driven

import (
	"context"

	"github.com/rem-labs/rem-core/internal/core/domain"
)

// TranscriptStore fetches enriched transcript documents by storage key.
// Implementations must decode and validate at this boundary: a document that
// does not match the Transcript shape is surfaced as domain.ErrCorruptData,
// a missing one as domain.ErrNotFound. The orchestrator treats both as
// "skip this recording".
type TranscriptStore interface {
	// Fetch retrieves one recording's transcript document
	Fetch(ctx context.Context, storageKey string) (*domain.Transcript, error)
}
