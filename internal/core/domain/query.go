package domain

import (
	"fmt"
	"strings"
	"time"
)

// SearchMode reports which ranking path produced a result set
type SearchMode string

const (
	SearchModeHybrid      SearchMode = "hybrid"  // keyword + semantic fusion (default)
	SearchModeKeywordOnly SearchMode = "keyword" // degraded: embedding provider unavailable
)

// Query limits
const (
	DefaultResultLimit = 10
	MaxResultLimit     = 100

	// MaxCandidateRecordings bounds per-query fan-out on large tenants.
	// When the cap is hit the most recent recordings take priority.
	MaxCandidateRecordings = 100
)

// QueryRequest is a natural-language search over a tenant's memories
type QueryRequest struct {
	TenantID      string     `json:"tenant_id,omitempty"` // resolved from auth when omitted
	Query         string     `json:"query"`
	From          *time.Time `json:"from,omitempty"`
	To            *time.Time `json:"to,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Speaker       string     `json:"speaker,omitempty"`
	IncludeAnswer bool       `json:"include_answer,omitempty"`
}

// Validate checks the request and applies limit defaults in place.
// Time bounds must be provided together or not at all.
func (r *QueryRequest) Validate() error {
	if strings.TrimSpace(r.TenantID) == "" {
		return fmt.Errorf("tenant_id is required: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(r.Query) == "" {
		return fmt.Errorf("query is required: %w", ErrInvalidInput)
	}
	if (r.From == nil) != (r.To == nil) {
		return fmt.Errorf("from and to must be provided together: %w", ErrInvalidInput)
	}
	if r.From != nil && r.To.Before(*r.From) {
		return fmt.Errorf("time range is inverted: %w", ErrInvalidInput)
	}
	if r.Limit <= 0 {
		r.Limit = DefaultResultLimit
	}
	if r.Limit > MaxResultLimit {
		r.Limit = MaxResultLimit
	}
	return nil
}

// RankedResult is one matching passage with its surrounding context.
// RelevanceScore is ordinal, not calibrated: exact-phrase matches can push
// the fused score above 1.0 and degraded keyword mode returns raw counts.
type RankedResult struct {
	RecordingID    string    `json:"recording_id"`
	DeviceID       string    `json:"device_id"`
	SegmentStart   float64   `json:"segment_start"`
	SegmentEnd     float64   `json:"segment_end"`
	SegmentIndex   int       `json:"segment_index"`
	Speaker        string    `json:"speaker,omitempty"`
	Text           string    `json:"text"`
	ContextText    string    `json:"context_text"`
	RelevanceScore float64   `json:"relevance_score"`
	RecordedAt     time.Time `json:"recorded_at"`           // startedAt + segment offset
	StartedAt      time.Time `json:"recording_started_at"`
	Topics         []string  `json:"topics,omitempty"`
}

// QueryResponse is the public result shape for a memory query.
// A query that matches nothing is a success with an explanatory message,
// never an error.
type QueryResponse struct {
	Success      bool           `json:"success"`
	Query        string         `json:"query"`
	Mode         SearchMode     `json:"mode"`
	Results      []RankedResult `json:"results"`
	TotalMatches int            `json:"total_matches"`
	Answer       string         `json:"answer,omitempty"`
	Message      string         `json:"message,omitempty"`
	Took         time.Duration  `json:"took" swaggertype:"integer" example:"1500000"`
}

// RankingConfig carries the hybrid scoring constants. The defaults mirror
// the values the pipeline has run with in production, but they are tuning
// knobs, not invariants.
type RankingConfig struct {
	KeywordWeight    float64 `json:"keyword_weight"`
	SemanticWeight   float64 `json:"semantic_weight"`
	SimilarityFloor  float64 `json:"similarity_floor"`
	ExactPhraseBoost float64 `json:"exact_phrase_boost"`
	MinTermLength    int     `json:"min_term_length"`
}

// DefaultRankingConfig returns the production scoring constants
func DefaultRankingConfig() RankingConfig {
	return RankingConfig{
		KeywordWeight:    0.3,
		SemanticWeight:   0.7,
		SimilarityFloor:  0.7,
		ExactPhraseBoost: 2.0,
		MinTermLength:    3,
	}
}
