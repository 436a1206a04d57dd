package driving

import (
	"context"

	"github.com/rem-labs/rem-core/internal/core/domain"
)

// AIStatus reports which AI services are currently live
type AIStatus struct {
	EmbeddingAvailable bool   `json:"embedding_available"`
	EmbeddingModel     string `json:"embedding_model,omitempty"`
	LLMAvailable       bool   `json:"llm_available"`
	LLMModel           string `json:"llm_model,omitempty"`
}

// SettingsService manages the AI provider configuration
type SettingsService interface {
	// GetAISettings retrieves the current AI configuration
	GetAISettings(ctx context.Context) (*domain.AISettings, error)

	// UpdateAISettings updates AI configuration and hot-swaps the live
	// services; connectivity is validated before the swap
	UpdateAISettings(ctx context.Context, req domain.AISettingsUpdate) (*AIStatus, error)

	// GetAIStatus returns the current availability of AI services
	GetAIStatus(ctx context.Context) (*AIStatus, error)
}
