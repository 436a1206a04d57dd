package domain

import "time"

// AIProvider identifies an AI service provider
type AIProvider string

const (
	AIProviderOpenAI AIProvider = "openai"
	AIProviderOllama AIProvider = "ollama"
)

// RequiresAPIKey returns true if the provider needs an API key
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI
}

// IsValid checks if the provider is supported
func (p AIProvider) IsValid() bool {
	return p == AIProviderOpenAI || p == AIProviderOllama
}

// AISettings holds the AI service configuration for the deployment.
// API keys are encrypted at rest by the settings store and never serialized.
type AISettings struct {
	Embedding EmbeddingSettings `json:"embedding"`
	LLM       LLMSettings       `json:"llm"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// EmbeddingSettings configures the embedding service
type EmbeddingSettings struct {
	Provider AIProvider `json:"provider"`
	Model    string     `json:"model"`
	APIKey   string     `json:"-"` // Never serialize to JSON
	BaseURL  string     `json:"base_url,omitempty"`
}

// IsConfigured returns true if embedding settings are properly configured
func (e *EmbeddingSettings) IsConfigured() bool {
	if e.Provider == "" {
		return false
	}
	if e.Provider.RequiresAPIKey() && e.APIKey == "" {
		return false
	}
	return true
}

// LLMSettings configures the answer-synthesis LLM service
type LLMSettings struct {
	Provider AIProvider `json:"provider"`
	Model    string     `json:"model"`
	APIKey   string     `json:"-"` // Never serialize to JSON
	BaseURL  string     `json:"base_url,omitempty"`
}

// IsConfigured returns true if LLM settings are properly configured
func (l *LLMSettings) IsConfigured() bool {
	if l.Provider == "" {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// AISettingsUpdate is the request shape for changing AI configuration
type AISettingsUpdate struct {
	Embedding *EmbeddingSettingsUpdate `json:"embedding,omitempty"`
	LLM       *LLMSettingsUpdate       `json:"llm,omitempty"`
}

// EmbeddingSettingsUpdate carries an embedding settings change, including
// the plaintext API key on the way in
type EmbeddingSettingsUpdate struct {
	Provider AIProvider `json:"provider"`
	Model    string     `json:"model,omitempty"`
	APIKey   string     `json:"api_key,omitempty"`
	BaseURL  string     `json:"base_url,omitempty"`
}

// LLMSettingsUpdate carries an LLM settings change
type LLMSettingsUpdate struct {
	Provider AIProvider `json:"provider"`
	Model    string     `json:"model,omitempty"`
	APIKey   string     `json:"api_key,omitempty"`
	BaseURL  string     `json:"base_url,omitempty"`
}
