package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rem-labs/rem-core/internal/core/domain"
	"github.com/rem-labs/rem-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore implements driven.SettingsStore using PostgreSQL.
// API keys are encrypted with AES-GCM before hitting the table.
type SettingsStore struct {
	db        *DB
	encryptor *SecretEncryptor
}

// NewSettingsStore creates a new SettingsStore
func NewSettingsStore(db *DB, encryptor *SecretEncryptor) *SettingsStore {
	return &SettingsStore{db: db, encryptor: encryptor}
}

// GetAISettings retrieves the AI configuration.
// Returns domain.ErrNotFound if none has been saved yet.
func (s *SettingsStore) GetAISettings(ctx context.Context) (*domain.AISettings, error) {
	query := `
		SELECT embedding_provider, embedding_model, embedding_api_key, embedding_base_url,
			   llm_provider, llm_model, llm_api_key, llm_base_url, updated_at
		FROM ai_settings
		WHERE id = 1
	`

	var settings domain.AISettings
	var embProvider, llmProvider string
	var embKey, llmKey []byte

	err := s.db.QueryRowContext(ctx, query).Scan(
		&embProvider,
		&settings.Embedding.Model,
		&embKey,
		&settings.Embedding.BaseURL,
		&llmProvider,
		&settings.LLM.Model,
		&llmKey,
		&settings.LLM.BaseURL,
		&settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get ai settings: %w", err)
	}

	settings.Embedding.Provider = domain.AIProvider(embProvider)
	settings.LLM.Provider = domain.AIProvider(llmProvider)

	if len(embKey) > 0 {
		settings.Embedding.APIKey, err = s.encryptor.DecryptString(embKey)
		if err != nil {
			return nil, fmt.Errorf("decrypt embedding api key: %w", err)
		}
	}
	if len(llmKey) > 0 {
		settings.LLM.APIKey, err = s.encryptor.DecryptString(llmKey)
		if err != nil {
			return nil, fmt.Errorf("decrypt llm api key: %w", err)
		}
	}

	return &settings, nil
}

// SaveAISettings persists the AI configuration
func (s *SettingsStore) SaveAISettings(ctx context.Context, settings *domain.AISettings) error {
	var embKey, llmKey []byte
	var err error

	if settings.Embedding.APIKey != "" {
		embKey, err = s.encryptor.EncryptString(settings.Embedding.APIKey)
		if err != nil {
			return fmt.Errorf("encrypt embedding api key: %w", err)
		}
	}
	if settings.LLM.APIKey != "" {
		llmKey, err = s.encryptor.EncryptString(settings.LLM.APIKey)
		if err != nil {
			return fmt.Errorf("encrypt llm api key: %w", err)
		}
	}

	settings.UpdatedAt = time.Now()

	query := `
		INSERT INTO ai_settings (id, embedding_provider, embedding_model, embedding_api_key, embedding_base_url,
								 llm_provider, llm_model, llm_api_key, llm_base_url, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			embedding_provider = EXCLUDED.embedding_provider,
			embedding_model = EXCLUDED.embedding_model,
			embedding_api_key = EXCLUDED.embedding_api_key,
			embedding_base_url = EXCLUDED.embedding_base_url,
			llm_provider = EXCLUDED.llm_provider,
			llm_model = EXCLUDED.llm_model,
			llm_api_key = EXCLUDED.llm_api_key,
			llm_base_url = EXCLUDED.llm_base_url,
			updated_at = EXCLUDED.updated_at
	`

	_, err = s.db.ExecContext(ctx, query,
		string(settings.Embedding.Provider),
		settings.Embedding.Model,
		embKey,
		settings.Embedding.BaseURL,
		string(settings.LLM.Provider),
		settings.LLM.Model,
		llmKey,
		settings.LLM.BaseURL,
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save ai settings: %w", err)
	}

	return nil
}
