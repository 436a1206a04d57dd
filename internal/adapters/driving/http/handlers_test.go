package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rem-labs/rem-core/internal/core/domain"
	"github.com/rem-labs/rem-core/internal/core/ports/driving"
)

// Mock services for testing

type mockAuthService struct {
	issueTokenFn    func(ctx context.Context, req domain.TokenRequest) (*domain.TokenResponse, error)
	validateTokenFn func(ctx context.Context, token string) (*domain.AuthContext, error)
}

func (m *mockAuthService) IssueToken(ctx context.Context, req domain.TokenRequest) (*domain.TokenResponse, error) {
	if m.issueTokenFn != nil {
		return m.issueTokenFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error) {
	if m.validateTokenFn != nil {
		return m.validateTokenFn(ctx, token)
	}
	return nil, errors.New("not implemented")
}

type mockQueryService struct {
	queryFn func(ctx context.Context, req domain.QueryRequest) (*domain.QueryResponse, error)
}

func (m *mockQueryService) Query(ctx context.Context, req domain.QueryRequest) (*domain.QueryResponse, error) {
	if m.queryFn != nil {
		return m.queryFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

type mockRecordingService struct {
	listFn          func(ctx context.Context, tenantID string, from, to *time.Time, limit int) ([]domain.RecordingRecord, error)
	getTranscriptFn func(ctx context.Context, tenantID, recordingID string) (*domain.Transcript, error)
}

func (m *mockRecordingService) List(ctx context.Context, tenantID string, from, to *time.Time, limit int) ([]domain.RecordingRecord, error) {
	if m.listFn != nil {
		return m.listFn(ctx, tenantID, from, to, limit)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRecordingService) GetTranscript(ctx context.Context, tenantID, recordingID string) (*domain.Transcript, error) {
	if m.getTranscriptFn != nil {
		return m.getTranscriptFn(ctx, tenantID, recordingID)
	}
	return nil, errors.New("not implemented")
}

type mockSettingsService struct {
	getFn    func(ctx context.Context) (*domain.AISettings, error)
	updateFn func(ctx context.Context, req domain.AISettingsUpdate) (*driving.AIStatus, error)
	statusFn func(ctx context.Context) (*driving.AIStatus, error)
}

func (m *mockSettingsService) GetAISettings(ctx context.Context) (*domain.AISettings, error) {
	if m.getFn != nil {
		return m.getFn(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockSettingsService) UpdateAISettings(ctx context.Context, req domain.AISettingsUpdate) (*driving.AIStatus, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockSettingsService) GetAIStatus(ctx context.Context) (*driving.AIStatus, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx)
	}
	return nil, errors.New("not implemented")
}

// withAuth attaches an authenticated tenant to the request context
func withAuth(req *http.Request, tenantID string) *http.Request {
	ctx := context.WithValue(req.Context(), authContextKey, &domain.AuthContext{TenantID: tenantID})
	return req.WithContext(ctx)
}

// Health endpoints

func TestHandleHealth(t *testing.T) {
	server := &Server{}

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()

	server.handleHealth(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
}

func TestHandleVersion(t *testing.T) {
	server := &Server{version: "1.2.3"}

	req := httptest.NewRequest("GET", "/version", nil)
	rr := httptest.NewRecorder()

	server.handleVersion(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["version"] != "1.2.3" {
		t.Errorf("expected version '1.2.3', got %s", response["version"])
	}
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHandleReady_DatabaseDown(t *testing.T) {
	server := &Server{
		db: pingerFunc(func(ctx context.Context) error { return errors.New("connection refused") }),
	}

	req := httptest.NewRequest("GET", "/ready", nil)
	rr := httptest.NewRecorder()

	server.handleReady(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rr.Code)
	}
}

func TestHandleReady_AllUp(t *testing.T) {
	ok := pingerFunc(func(ctx context.Context) error { return nil })
	server := &Server{db: ok, redisClient: ok}

	req := httptest.NewRequest("GET", "/ready", nil)
	rr := httptest.NewRecorder()

	server.handleReady(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
}

// Auth endpoints

func TestHandleIssueToken_Success(t *testing.T) {
	expiresAt := time.Now().Add(24 * time.Hour)
	mockAuth := &mockAuthService{
		issueTokenFn: func(ctx context.Context, req domain.TokenRequest) (*domain.TokenResponse, error) {
			if req.TenantID == "tenant-1" && req.APIKey == "valid-key" {
				return &domain.TokenResponse{Token: "test-token", ExpiresAt: expiresAt}, nil
			}
			return nil, domain.ErrInvalidCredentials
		},
	}

	server := &Server{authService: mockAuth}

	body, _ := json.Marshal(domain.TokenRequest{TenantID: "tenant-1", APIKey: "valid-key"})
	req := httptest.NewRequest("POST", "/api/v1/auth/token", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleIssueToken(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response domain.TokenResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Token != "test-token" {
		t.Errorf("expected token 'test-token', got %s", response.Token)
	}
}

func TestHandleIssueToken_InvalidCredentials(t *testing.T) {
	mockAuth := &mockAuthService{
		issueTokenFn: func(ctx context.Context, req domain.TokenRequest) (*domain.TokenResponse, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}

	server := &Server{authService: mockAuth}

	body, _ := json.Marshal(domain.TokenRequest{TenantID: "tenant-1", APIKey: "wrong"})
	req := httptest.NewRequest("POST", "/api/v1/auth/token", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleIssueToken(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}
}

func TestHandleIssueToken_InvalidJSON(t *testing.T) {
	server := &Server{authService: &mockAuthService{}}

	req := httptest.NewRequest("POST", "/api/v1/auth/token", bytes.NewBufferString("{invalid"))
	rr := httptest.NewRecorder()

	server.handleIssueToken(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

// Query endpoint

func TestHandleQuery_Success(t *testing.T) {
	mockQuery := &mockQueryService{
		queryFn: func(ctx context.Context, req domain.QueryRequest) (*domain.QueryResponse, error) {
			if req.TenantID != "tenant-1" {
				t.Errorf("expected tenant from auth context, got %s", req.TenantID)
			}
			return &domain.QueryResponse{
				Success: true,
				Query:   req.Query,
				Mode:    domain.SearchModeHybrid,
				Results: []domain.RankedResult{
					{RecordingID: "rec-1", Text: "the budget meeting is Tuesday", RelevanceScore: 0.91},
				},
				TotalMatches: 1,
			}, nil
		},
	}

	server := &Server{queryService: mockQuery}

	body, _ := json.Marshal(domain.QueryRequest{Query: "budget meeting"})
	req := withAuth(httptest.NewRequest("POST", "/api/v1/query", bytes.NewBuffer(body)), "tenant-1")
	rr := httptest.NewRecorder()

	server.handleQuery(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response domain.QueryResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !response.Success || response.TotalMatches != 1 {
		t.Errorf("unexpected response: %+v", response)
	}
}

func TestHandleQuery_TenantFromTokenOverridesBody(t *testing.T) {
	mockQuery := &mockQueryService{
		queryFn: func(ctx context.Context, req domain.QueryRequest) (*domain.QueryResponse, error) {
			if req.TenantID != "tenant-1" {
				t.Errorf("body tenant_id must be ignored, got %s", req.TenantID)
			}
			return &domain.QueryResponse{Success: true, Query: req.Query}, nil
		},
	}

	server := &Server{queryService: mockQuery}

	body, _ := json.Marshal(domain.QueryRequest{TenantID: "tenant-other", Query: "anything"})
	req := withAuth(httptest.NewRequest("POST", "/api/v1/query", bytes.NewBuffer(body)), "tenant-1")
	rr := httptest.NewRecorder()

	server.handleQuery(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
}

func TestHandleQuery_ValidationError(t *testing.T) {
	mockQuery := &mockQueryService{
		queryFn: func(ctx context.Context, req domain.QueryRequest) (*domain.QueryResponse, error) {
			return nil, fmt.Errorf("query is required: %w", domain.ErrInvalidInput)
		},
	}

	server := &Server{queryService: mockQuery}

	body, _ := json.Marshal(domain.QueryRequest{Query: ""})
	req := withAuth(httptest.NewRequest("POST", "/api/v1/query", bytes.NewBuffer(body)), "tenant-1")
	rr := httptest.NewRecorder()

	server.handleQuery(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleQuery_NoAuthContext(t *testing.T) {
	server := &Server{queryService: &mockQueryService{}}

	body, _ := json.Marshal(domain.QueryRequest{Query: "anything"})
	req := httptest.NewRequest("POST", "/api/v1/query", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleQuery(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}
}

// Recording endpoints

func TestHandleListRecordings_Success(t *testing.T) {
	started := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mockRec := &mockRecordingService{
		listFn: func(ctx context.Context, tenantID string, from, to *time.Time, limit int) ([]domain.RecordingRecord, error) {
			if tenantID != "tenant-1" {
				t.Errorf("expected tenant-1, got %s", tenantID)
			}
			return []domain.RecordingRecord{
				{TenantID: tenantID, RecordingID: "rec-1", Status: domain.StatusTranscribed, StartedAt: started},
			}, nil
		},
	}

	server := &Server{recordingService: mockRec}

	req := withAuth(httptest.NewRequest("GET", "/api/v1/recordings", nil), "tenant-1")
	rr := httptest.NewRecorder()

	server.handleListRecordings(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response recordingListResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Count != 1 || response.Recordings[0].RecordingID != "rec-1" {
		t.Errorf("unexpected response: %+v", response)
	}
}

func TestHandleListRecordings_TimeRange(t *testing.T) {
	mockRec := &mockRecordingService{
		listFn: func(ctx context.Context, tenantID string, from, to *time.Time, limit int) ([]domain.RecordingRecord, error) {
			if from == nil || to == nil {
				t.Fatal("expected parsed time range")
			}
			if !from.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
				t.Errorf("unexpected from: %v", from)
			}
			if limit != 5 {
				t.Errorf("expected limit 5, got %d", limit)
			}
			return nil, nil
		},
	}

	server := &Server{recordingService: mockRec}

	req := withAuth(httptest.NewRequest("GET",
		"/api/v1/recordings?from=2024-03-01T00:00:00Z&to=2024-03-31T00:00:00Z&limit=5", nil), "tenant-1")
	rr := httptest.NewRecorder()

	server.handleListRecordings(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
}

func TestHandleListRecordings_BadTimeParam(t *testing.T) {
	server := &Server{recordingService: &mockRecordingService{}}

	req := withAuth(httptest.NewRequest("GET", "/api/v1/recordings?from=yesterday", nil), "tenant-1")
	rr := httptest.NewRecorder()

	server.handleListRecordings(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleGetTranscript_NotFound(t *testing.T) {
	mockRec := &mockRecordingService{
		getTranscriptFn: func(ctx context.Context, tenantID, recordingID string) (*domain.Transcript, error) {
			return nil, domain.ErrNotFound
		},
	}

	server := &Server{recordingService: mockRec}

	req := withAuth(httptest.NewRequest("GET", "/api/v1/recordings/rec-404/transcript", nil), "tenant-1")
	req.SetPathValue("id", "rec-404")
	rr := httptest.NewRecorder()

	server.handleGetTranscript(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}

func TestHandleGetTranscript_Success(t *testing.T) {
	mockRec := &mockRecordingService{
		getTranscriptFn: func(ctx context.Context, tenantID, recordingID string) (*domain.Transcript, error) {
			return &domain.Transcript{
				RecordingID: recordingID,
				FullText:    "hello world",
				Segments: []domain.TranscriptSegment{
					{Start: 0, End: 5, Text: "hello world"},
				},
			}, nil
		},
	}

	server := &Server{recordingService: mockRec}

	req := withAuth(httptest.NewRequest("GET", "/api/v1/recordings/rec-1/transcript", nil), "tenant-1")
	req.SetPathValue("id", "rec-1")
	rr := httptest.NewRecorder()

	server.handleGetTranscript(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response domain.Transcript
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.RecordingID != "rec-1" {
		t.Errorf("expected rec-1, got %s", response.RecordingID)
	}
}

// AI settings endpoints

func TestHandleGetAISettings_NeverSaved(t *testing.T) {
	mockSettings := &mockSettingsService{
		getFn: func(ctx context.Context) (*domain.AISettings, error) {
			return nil, domain.ErrNotFound
		},
	}

	server := &Server{settingsService: mockSettings}

	req := withAuth(httptest.NewRequest("GET", "/api/v1/settings/ai", nil), "tenant-1")
	rr := httptest.NewRecorder()

	server.handleGetAISettings(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
}

func TestHandleGetAISettings_NeverLeaksAPIKeys(t *testing.T) {
	mockSettings := &mockSettingsService{
		getFn: func(ctx context.Context) (*domain.AISettings, error) {
			return &domain.AISettings{
				Embedding: domain.EmbeddingSettings{
					Provider: domain.AIProviderOpenAI,
					Model:    "text-embedding-3-small",
					APIKey:   "sk-super-secret",
				},
			}, nil
		},
	}

	server := &Server{settingsService: mockSettings}

	req := withAuth(httptest.NewRequest("GET", "/api/v1/settings/ai", nil), "tenant-1")
	rr := httptest.NewRecorder()

	server.handleGetAISettings(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
	if bytes.Contains(rr.Body.Bytes(), []byte("sk-super-secret")) {
		t.Error("API key leaked into response body")
	}
}

func TestHandleUpdateAISettings_InvalidProvider(t *testing.T) {
	mockSettings := &mockSettingsService{
		updateFn: func(ctx context.Context, req domain.AISettingsUpdate) (*driving.AIStatus, error) {
			return nil, fmt.Errorf("%w: fancy-new-ai", domain.ErrInvalidProvider)
		},
	}

	server := &Server{settingsService: mockSettings}

	body, _ := json.Marshal(domain.AISettingsUpdate{
		Embedding: &domain.EmbeddingSettingsUpdate{Provider: "fancy-new-ai"},
	})
	req := withAuth(httptest.NewRequest("PUT", "/api/v1/settings/ai", bytes.NewBuffer(body)), "tenant-1")
	rr := httptest.NewRecorder()

	server.handleUpdateAISettings(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleUpdateAISettings_Success(t *testing.T) {
	mockSettings := &mockSettingsService{
		updateFn: func(ctx context.Context, req domain.AISettingsUpdate) (*driving.AIStatus, error) {
			return &driving.AIStatus{
				EmbeddingAvailable: true,
				EmbeddingModel:     "text-embedding-3-small",
			}, nil
		},
	}

	server := &Server{settingsService: mockSettings}

	body, _ := json.Marshal(domain.AISettingsUpdate{
		Embedding: &domain.EmbeddingSettingsUpdate{
			Provider: domain.AIProviderOpenAI,
			Model:    "text-embedding-3-small",
			APIKey:   "sk-test",
		},
	})
	req := withAuth(httptest.NewRequest("PUT", "/api/v1/settings/ai", bytes.NewBuffer(body)), "tenant-1")
	rr := httptest.NewRecorder()

	server.handleUpdateAISettings(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response driving.AIStatus
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !response.EmbeddingAvailable {
		t.Error("expected embedding available")
	}
}

// Helpers

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	data := map[string]string{"foo": "bar"}
	writeJSON(rr, http.StatusCreated, data)

	if rr.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rr.Code)
	}
	if rr.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", rr.Header().Get("Content-Type"))
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	writeError(rr, http.StatusBadRequest, "invalid input")

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["error"] != "invalid input" {
		t.Errorf("expected error 'invalid input', got %s", response["error"])
	}
}
