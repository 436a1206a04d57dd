package mocks

import (
	"context"
	"sync"

	"github.com/rem-labs/rem-core/internal/core/domain"
)

// MockTranscriptStore is a mock implementation of TranscriptStore for testing
type MockTranscriptStore struct {
	mu          sync.RWMutex
	transcripts map[string]*domain.Transcript
	corrupt     map[string]bool
	fetchCount  int
}

// NewMockTranscriptStore creates a new MockTranscriptStore
func NewMockTranscriptStore() *MockTranscriptStore {
	return &MockTranscriptStore{
		transcripts: make(map[string]*domain.Transcript),
		corrupt:     make(map[string]bool),
	}
}

func (m *MockTranscriptStore) Fetch(ctx context.Context, storageKey string) (*domain.Transcript, error) {
	m.mu.Lock()
	m.fetchCount++
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.corrupt[storageKey] {
		return nil, domain.ErrCorruptData
	}
	t, ok := m.transcripts[storageKey]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

// Helper methods for testing

// Put registers a transcript under a storage key
func (m *MockTranscriptStore) Put(storageKey string, t *domain.Transcript) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transcripts[storageKey] = t
}

// SetCorrupt marks a key as returning ErrCorruptData
func (m *MockTranscriptStore) SetCorrupt(storageKey string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.corrupt[storageKey] = true
}

// FetchCount returns how many fetches were attempted
func (m *MockTranscriptStore) FetchCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fetchCount
}
