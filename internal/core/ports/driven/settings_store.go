package driven

import (
	"context"

	"github.com/rem-labs/rem-core/internal/core/domain"
)

// SettingsStore persists AI provider settings.
// API keys are encrypted before they hit storage.
type SettingsStore interface {
	// GetAISettings retrieves the AI configuration
	// Returns domain.ErrNotFound if none has been saved yet
	GetAISettings(ctx context.Context) (*domain.AISettings, error)

	// SaveAISettings persists the AI configuration
	SaveAISettings(ctx context.Context, settings *domain.AISettings) error
}
