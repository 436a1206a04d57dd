package domain

import "time"

// AuthContext contains the authenticated tenant info for request context
type AuthContext struct {
	TenantID string `json:"tenant_id"`
	DeviceID string `json:"device_id,omitempty"`
}

// TokenRequest exchanges a tenant API key for a bearer token
type TokenRequest struct {
	TenantID string `json:"tenant_id"`
	APIKey   string `json:"api_key"`
}

// TokenResponse is returned after successful authentication
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
