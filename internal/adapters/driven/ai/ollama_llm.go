package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rem-labs/rem-core/internal/core/ports/driven"
)

// Ensure OllamaLLM implements LLMService
var _ driven.LLMService = (*OllamaLLM)(nil)

// OllamaLLM implements LLMService against a local Ollama server
type OllamaLLM struct {
	model   string
	baseURL string
	client  *http.Client
}

// NewOllamaLLM creates a new Ollama LLM service
func NewOllamaLLM(baseURL, model string) (driven.LLMService, error) {
	if model == "" {
		model = "llama3.1"
	}
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}

	return &OllamaLLM{
		model:   model,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

type ollamaChatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type ollamaChatResponse struct {
	Message chatMessage `json:"message"`
	Error   string      `json:"error,omitempty"`
}

// Answer generates a natural-language answer from the retrieved context
func (l *OllamaLLM) Answer(ctx context.Context, question, contextBlock string) (string, error) {
	prompt := fmt.Sprintf(
		"Based on the following transcript excerpts from voice recordings, please answer the question.\n\n%s\nQuestion: %s\n\nAnswer:",
		contextBlock, question,
	)

	reqBody := ollamaChatRequest{
		Model: l.model,
		Messages: []chatMessage{
			{Role: "system", Content: answerSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Stream: false,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", l.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var chatResp ollamaChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if chatResp.Error != "" {
		return "", fmt.Errorf("Ollama API error: %s", chatResp.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Ollama API returned status %d", resp.StatusCode)
	}

	return chatResp.Message.Content, nil
}

// Model returns the model name being used
func (l *OllamaLLM) Model() string {
	return l.model
}

// Ping verifies the Ollama server is reachable
func (l *OllamaLLM) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", l.baseURL+"/api/tags", nil)
	if err != nil {
		return err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Ollama API returned status %d", resp.StatusCode)
	}
	return nil
}

// Close releases resources held by the LLM service
func (l *OllamaLLM) Close() error {
	l.client.CloseIdleConnections()
	return nil
}
