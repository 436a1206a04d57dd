package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rem-labs/rem-core/internal/core/domain"
)

// MockRecordingIndex is a mock implementation of RecordingIndex for testing
type MockRecordingIndex struct {
	mu      sync.RWMutex
	records []domain.RecordingRecord
	failErr error
}

// NewMockRecordingIndex creates a new MockRecordingIndex
func NewMockRecordingIndex() *MockRecordingIndex {
	return &MockRecordingIndex{}
}

func (m *MockRecordingIndex) ListSearchable(ctx context.Context, tenantID string, from, to *time.Time, max int) ([]domain.RecordingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.failErr != nil {
		return nil, m.failErr
	}

	var out []domain.RecordingRecord
	for _, r := range m.records {
		if r.TenantID != tenantID || !r.IsSearchable() {
			continue
		}
		if from != nil && r.StartedAt.Before(*from) {
			continue
		}
		if to != nil && r.StartedAt.After(*to) {
			continue
		}
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out, nil
}

func (m *MockRecordingIndex) Get(ctx context.Context, tenantID, recordingID string) (*domain.RecordingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.failErr != nil {
		return nil, m.failErr
	}
	for _, r := range m.records {
		if r.TenantID == tenantID && r.RecordingID == recordingID {
			rec := r
			return &rec, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Helper methods for testing

// Add registers a recording record
func (m *MockRecordingIndex) Add(rec domain.RecordingRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
}

// SetError makes all lookups fail with err
func (m *MockRecordingIndex) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
}
