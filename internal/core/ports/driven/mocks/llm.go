package mocks

import (
	"context"
	"sync"
)

// MockLLMService is a mock implementation of LLMService for testing
type MockLLMService struct {
	mu       sync.Mutex
	answer   string
	failNext bool

	lastQuestion string
	lastContext  string
}

// NewMockLLMService creates a new MockLLMService
func NewMockLLMService() *MockLLMService {
	return &MockLLMService{
		answer: "mock answer",
	}
}

func (m *MockLLMService) Answer(ctx context.Context, question, contextBlock string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failNext {
		m.failNext = false
		return "", context.DeadlineExceeded
	}
	m.lastQuestion = question
	m.lastContext = contextBlock
	return m.answer, nil
}

func (m *MockLLMService) Model() string {
	return "mock-llm-model"
}

func (m *MockLLMService) Ping(ctx context.Context) error {
	return nil
}

func (m *MockLLMService) Close() error {
	return nil
}

// Helper methods for testing

// SetAnswer sets the canned answer
func (m *MockLLMService) SetAnswer(answer string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answer = answer
}

// SetFailNext makes the next call fail
func (m *MockLLMService) SetFailNext(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = fail
}

// LastContext returns the context block passed to the last Answer call
func (m *MockLLMService) LastContext() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastContext
}
