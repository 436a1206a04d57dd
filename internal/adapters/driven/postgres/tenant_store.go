package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rem-labs/rem-core/internal/core/domain"
)

// TenantStore looks up tenant credentials for token issuance
type TenantStore struct {
	db *DB
}

// NewTenantStore creates a new TenantStore
func NewTenantStore(db *DB) *TenantStore {
	return &TenantStore{db: db}
}

// GetAPIKeyHash returns the bcrypt hash of a tenant's API key
func (s *TenantStore) GetAPIKeyHash(ctx context.Context, tenantID string) (string, error) {
	var hash string
	err := s.db.QueryRowContext(ctx,
		`SELECT api_key_hash FROM tenants WHERE tenant_id = $1`, tenantID,
	).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get tenant %s: %w", tenantID, err)
	}

	return hash, nil
}

// UpsertTenant registers a tenant with its API key hash
func (s *TenantStore) UpsertTenant(ctx context.Context, tenantID, apiKeyHash string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tenants (tenant_id, api_key_hash)
		VALUES ($1, $2)
		ON CONFLICT (tenant_id) DO UPDATE SET api_key_hash = EXCLUDED.api_key_hash
	`, tenantID, apiKeyHash)
	if err != nil {
		return fmt.Errorf("upsert tenant %s: %w", tenantID, err)
	}

	return nil
}
