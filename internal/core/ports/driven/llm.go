package driven

import (
	"context"
)

// LLMService provides answer synthesis over retrieved memory passages
type LLMService interface {
	// Answer generates a natural-language answer to the question from the
	// supplied transcript context block
	Answer(ctx context.Context, question, contextBlock string) (string, error)

	// Model returns the model name being used
	Model() string

	// Ping verifies the LLM service is available
	Ping(ctx context.Context) error

	// Close releases resources held by the LLM service
	Close() error
}
