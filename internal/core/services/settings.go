package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rem-labs/rem-core/internal/core/domain"
	"github.com/rem-labs/rem-core/internal/core/ports/driven"
	"github.com/rem-labs/rem-core/internal/core/ports/driving"
	"github.com/rem-labs/rem-core/internal/runtime"
)

// Ensure settingsService implements SettingsService
var _ driving.SettingsService = (*settingsService)(nil)

// settingsService manages AI provider configuration and hot-swaps the
// live services when it changes
type settingsService struct {
	store     driven.SettingsStore
	aiFactory driven.AIServiceFactory
	services  *runtime.Services
	logger    *slog.Logger
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(
	store driven.SettingsStore,
	aiFactory driven.AIServiceFactory,
	services *runtime.Services,
	logger *slog.Logger,
) driving.SettingsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &settingsService{
		store:     store,
		aiFactory: aiFactory,
		services:  services,
		logger:    logger,
	}
}

// GetAISettings retrieves the current AI configuration
func (s *settingsService) GetAISettings(ctx context.Context) (*domain.AISettings, error) {
	return s.store.GetAISettings(ctx)
}

// UpdateAISettings updates AI configuration and hot-swaps the live services.
// Connectivity is validated before a provider goes live; a provider that
// fails validation is reported unavailable but the settings are still saved.
func (s *settingsService) UpdateAISettings(ctx context.Context, req domain.AISettingsUpdate) (*driving.AIStatus, error) {
	settings, err := s.store.GetAISettings(ctx)
	if err != nil {
		settings = &domain.AISettings{}
	}

	if req.Embedding != nil {
		if !req.Embedding.Provider.IsValid() {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidProvider, req.Embedding.Provider)
		}
		settings.Embedding = domain.EmbeddingSettings{
			Provider: req.Embedding.Provider,
			Model:    req.Embedding.Model,
			APIKey:   req.Embedding.APIKey,
			BaseURL:  req.Embedding.BaseURL,
		}
	}
	if req.LLM != nil {
		if !req.LLM.Provider.IsValid() {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidProvider, req.LLM.Provider)
		}
		settings.LLM = domain.LLMSettings{
			Provider: req.LLM.Provider,
			Model:    req.LLM.Model,
			APIKey:   req.LLM.APIKey,
			BaseURL:  req.LLM.BaseURL,
		}
	}

	settings.UpdatedAt = time.Now()
	if err := s.store.SaveAISettings(ctx, settings); err != nil {
		return nil, err
	}

	// Hot-reload services
	if settings.Embedding.IsConfigured() {
		embSvc, err := s.aiFactory.CreateEmbeddingService(&settings.Embedding)
		if err != nil {
			s.logger.Warn("embedding service creation failed", "error", err)
			s.services.SetEmbeddingService(nil)
		} else if err := s.services.ValidateAndSetEmbedding(ctx, embSvc); err != nil {
			s.logger.Warn("embedding service validation failed", "error", err)
		}
	} else {
		s.services.SetEmbeddingService(nil)
	}

	if settings.LLM.IsConfigured() {
		llmSvc, err := s.aiFactory.CreateLLMService(&settings.LLM)
		if err != nil {
			s.logger.Warn("llm service creation failed", "error", err)
			s.services.SetLLMService(nil)
		} else if err := s.services.ValidateAndSetLLM(ctx, llmSvc); err != nil {
			s.logger.Warn("llm service validation failed", "error", err)
		}
	} else {
		s.services.SetLLMService(nil)
	}

	return s.status(), nil
}

// GetAIStatus returns the current availability of AI services
func (s *settingsService) GetAIStatus(_ context.Context) (*driving.AIStatus, error) {
	return s.status(), nil
}

func (s *settingsService) status() *driving.AIStatus {
	status := &driving.AIStatus{}
	if emb := s.services.EmbeddingService(); emb != nil {
		status.EmbeddingAvailable = true
		status.EmbeddingModel = emb.Model()
	}
	if llm := s.services.LLMService(); llm != nil {
		status.LLMAvailable = true
		status.LLMModel = llm.Model()
	}
	return status
}
