package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rem-labs/rem-core/internal/core/domain"
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// recordingListResponse wraps a recording listing
type recordingListResponse struct {
	Recordings []domain.RecordingRecord `json:"recordings"`
	Count      int                      `json:"count"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns the readiness status of the API (checks database and cache connections)
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  ErrorResponse  "A dependency is unreachable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "cache unreachable")
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Auth endpoints

// handleIssueToken godoc
// @Summary      Issue bearer token
// @Description  Exchange a tenant API key for a bearer token
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request  body      domain.TokenRequest  true  "Tenant credentials"
// @Success      200      {object}  domain.TokenResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      401      {object}  ErrorResponse  "Invalid credentials"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /auth/token [post]
func (s *Server) handleIssueToken(w http.ResponseWriter, r *http.Request) {
	var req domain.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.authService.IssueToken(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "tenant_id and api_key are required")
		case errors.Is(err, domain.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "invalid credentials")
		default:
			writeError(w, http.StatusInternalServerError, "authentication failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Query endpoint

// handleQuery godoc
// @Summary      Query memories
// @Description  Hybrid keyword and semantic search over the tenant's transcribed recordings. Falls back to keyword-only ranking when the embedding provider is unavailable. Optionally synthesizes a natural-language answer from the top results.
// @Tags         Query
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.QueryRequest  true  "Memory query"
// @Success      200      {object}  domain.QueryResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      500      {object}  ErrorResponse  "Query failed"
// @Router       /query [post]
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req domain.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Tenant identity always comes from the token, never the body
	req.TenantID = authCtx.TenantID

	resp, err := s.queryService.Query(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "query failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Recording endpoints

// handleListRecordings godoc
// @Summary      List recordings
// @Description  List the tenant's searchable recordings, most recent first
// @Tags         Recordings
// @Produce      json
// @Security     BearerAuth
// @Param        from   query     string  false  "Range start (RFC 3339)"
// @Param        to     query     string  false  "Range end (RFC 3339)"
// @Param        limit  query     int     false  "Maximum records to return"
// @Success      200    {object}  recordingListResponse
// @Failure      400    {object}  ErrorResponse  "Invalid query parameters"
// @Failure      401    {object}  ErrorResponse  "Unauthorized"
// @Failure      500    {object}  ErrorResponse  "Internal server error"
// @Router       /recordings [get]
func (s *Server) handleListRecordings(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	from, err := parseTimeParam(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from parameter")
		return
	}
	to, err := parseTimeParam(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to parameter")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
	}

	recordings, err := s.recordingService.List(r.Context(), authCtx.TenantID, from, to, limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to list recordings")
		return
	}

	writeJSON(w, http.StatusOK, recordingListResponse{
		Recordings: recordings,
		Count:      len(recordings),
	})
}

// handleGetTranscript godoc
// @Summary      Get transcript
// @Description  Get the full transcript document for one of the tenant's recordings
// @Tags         Recordings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Recording ID"
// @Success      200  {object}  domain.Transcript
// @Failure      400  {object}  ErrorResponse  "Missing recording ID"
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      404  {object}  ErrorResponse  "Recording not found"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /recordings/{id}/transcript [get]
func (s *Server) handleGetTranscript(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing recording id")
		return
	}

	transcript, err := s.recordingService.GetTranscript(r.Context(), authCtx.TenantID, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "recording not found")
		case errors.Is(err, domain.ErrCorruptData):
			writeError(w, http.StatusInternalServerError, "transcript is unreadable")
		default:
			writeError(w, http.StatusInternalServerError, "failed to get transcript")
		}
		return
	}

	writeJSON(w, http.StatusOK, transcript)
}

// AI settings endpoints

// handleGetAISettings godoc
// @Summary      Get AI settings
// @Description  Get the current AI provider configuration. API keys are never returned.
// @Tags         Settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AISettings
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /settings/ai [get]
func (s *Server) handleGetAISettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settingsService.GetAISettings(r.Context())
	if errors.Is(err, domain.ErrNotFound) {
		settings = &domain.AISettings{}
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get AI settings")
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// handleUpdateAISettings godoc
// @Summary      Update AI settings
// @Description  Update the AI provider configuration and hot-swap the live services. Returns the resulting service availability.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.AISettingsUpdate  true  "Settings changes"
// @Success      200      {object}  driving.AIStatus
// @Failure      400      {object}  ErrorResponse  "Invalid request"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /settings/ai [put]
func (s *Server) handleUpdateAISettings(w http.ResponseWriter, r *http.Request) {
	var req domain.AISettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	status, err := s.settingsService.UpdateAISettings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidProvider), errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to update AI settings")
		}
		return
	}

	writeJSON(w, http.StatusOK, status)
}

// handleGetAIStatus godoc
// @Summary      Get AI service status
// @Description  Report which AI services are currently live
// @Tags         Settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  driving.AIStatus
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /settings/ai/status [get]
func (s *Server) handleGetAIStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.settingsService.GetAIStatus(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get AI status")
		return
	}

	writeJSON(w, http.StatusOK, status)
}

// Helpers

func parseTimeParam(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
