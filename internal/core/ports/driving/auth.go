package driving

import (
	"context"

	"github.com/rem-labs/rem-core/internal/core/domain"
)

// AuthService handles tenant authentication
type AuthService interface {
	// IssueToken exchanges a tenant API key for a bearer token
	IssueToken(ctx context.Context, req domain.TokenRequest) (*domain.TokenResponse, error)

	// ValidateToken validates a bearer token and returns its tenant context
	ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error)
}
