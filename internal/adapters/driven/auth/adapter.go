package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rem-labs/rem-core/internal/core/domain"
	"github.com/rem-labs/rem-core/internal/core/ports/driving"
)

// Ensure Adapter implements AuthService
var _ driving.AuthService = (*Adapter)(nil)

// DefaultTokenTTL is how long issued bearer tokens remain valid
const DefaultTokenTTL = 24 * time.Hour

// TenantCredentials looks up the bcrypt hash of a tenant's API key
type TenantCredentials interface {
	GetAPIKeyHash(ctx context.Context, tenantID string) (string, error)
}

// jwtClaims carries the tenant identity inside the JWT
type jwtClaims struct {
	TenantID string `json:"tenant_id"`
	DeviceID string `json:"device_id,omitempty"`
	jwt.RegisteredClaims
}

// Adapter handles tenant authentication using bcrypt and JWT
type Adapter struct {
	tenants    TenantCredentials
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
}

// NewAdapter creates a new auth adapter with the given JWT secret
func NewAdapter(tenants TenantCredentials, jwtSecret string) *Adapter {
	return &Adapter{
		tenants:    tenants,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   DefaultTokenTTL,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// HashAPIKey generates a bcrypt hash for a plaintext API key,
// used when registering tenants
func (a *Adapter) HashAPIKey(apiKey string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), a.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// IssueToken exchanges a tenant API key for a bearer token
func (a *Adapter) IssueToken(ctx context.Context, req domain.TokenRequest) (*domain.TokenResponse, error) {
	if req.TenantID == "" || req.APIKey == "" {
		return nil, fmt.Errorf("%w: tenant_id and api_key are required", domain.ErrInvalidInput)
	}

	hash, err := a.tenants.GetAPIKeyHash(ctx, req.TenantID)
	if errors.Is(err, domain.ErrNotFound) {
		// Unknown tenant looks the same as a wrong key
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("look up tenant: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.APIKey)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(a.tokenTTL)

	claims := jwtClaims{
		TenantID: req.TenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &domain.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateToken validates a bearer token and returns its tenant context
func (a *Adapter) ValidateToken(ctx context.Context, tokenString string) (*domain.AuthContext, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, domain.ErrTokenExpired
	}
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid || claims.TenantID == "" {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.AuthContext{
		TenantID: claims.TenantID,
		DeviceID: claims.DeviceID,
	}, nil
}
