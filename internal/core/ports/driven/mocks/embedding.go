package mocks

import (
	"context"
	"hash/fnv"
	"sync"
)

// MockEmbeddingService is a mock implementation of EmbeddingService for testing.
// Embeddings are deterministic hashes of the input text; SetQueryEmbedding
// pins an exact vector when a test needs controlled similarity.
type MockEmbeddingService struct {
	mu         sync.Mutex
	dimensions int
	model      string
	failAlways bool
	failNext   bool
	pinned     map[string][]float32
}

// NewMockEmbeddingService creates a new MockEmbeddingService
func NewMockEmbeddingService() *MockEmbeddingService {
	return &MockEmbeddingService{
		dimensions: 1536,
		model:      "mock-embedding-model",
		pinned:     make(map[string][]float32),
	}
}

func (m *MockEmbeddingService) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failAlways {
		return nil, context.DeadlineExceeded
	}
	if m.failNext {
		m.failNext = false
		return nil, context.DeadlineExceeded
	}
	if v, ok := m.pinned[query]; ok {
		return v, nil
	}
	return m.generateEmbedding(query), nil
}

func (m *MockEmbeddingService) Dimensions() int {
	return m.dimensions
}

func (m *MockEmbeddingService) Model() string {
	return m.model
}

func (m *MockEmbeddingService) HealthCheck(ctx context.Context) error {
	if m.failAlways {
		return context.DeadlineExceeded
	}
	return nil
}

func (m *MockEmbeddingService) Close() error {
	return nil
}

// generateEmbedding generates a deterministic embedding based on text hash
func (m *MockEmbeddingService) generateEmbedding(text string) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	embedding := make([]float32, m.dimensions)
	for i := range embedding {
		seed = seed*1103515245 + 12345
		embedding[i] = float32(seed%1000) / 1000.0
	}
	return embedding
}

// Helper methods for testing

// SetFailNext makes the next call fail
func (m *MockEmbeddingService) SetFailNext(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = fail
}

// SetUnavailable makes every call fail
func (m *MockEmbeddingService) SetUnavailable(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failAlways = fail
}

// SetDimensions overrides the embedding dimension
func (m *MockEmbeddingService) SetDimensions(dim int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dimensions = dim
}

// SetQueryEmbedding pins the vector returned for an exact query string
func (m *MockEmbeddingService) SetQueryEmbedding(query string, embedding []float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pinned[query] = embedding
}
