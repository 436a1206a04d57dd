package driving

import (
	"context"

	"github.com/rem-labs/rem-core/internal/core/domain"
)

// QueryService is the public entry point for memory retrieval
type QueryService interface {
	// Query runs a hybrid keyword+semantic search over a tenant's
	// transcribed recordings and returns a globally ranked result list.
	// Partial upstream failures degrade into fewer results; only request
	// validation produces an error.
	Query(ctx context.Context, req domain.QueryRequest) (*domain.QueryResponse, error)
}
