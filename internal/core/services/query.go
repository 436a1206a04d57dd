package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rem-labs/rem-core/internal/core/domain"
	"github.com/rem-labs/rem-core/internal/core/ports/driven"
	"github.com/rem-labs/rem-core/internal/core/ports/driving"
	"github.com/rem-labs/rem-core/internal/runtime"
)

// Ensure queryService implements QueryService
var _ driving.QueryService = (*queryService)(nil)

// QueryConfig tunes the retrieval pipeline
type QueryConfig struct {
	// Ranking holds the hybrid scoring constants
	Ranking domain.RankingConfig

	// Concurrency bounds the per-recording fetch-and-score fan-out
	Concurrency int

	// EmbedTimeout bounds the query-embedding call. It is a cancellation
	// boundary, not a retry point: a slow embedding degrades the query to
	// keyword-only mode instead of blocking it.
	EmbedTimeout time.Duration

	// AnswerTimeout bounds optional LLM answer synthesis
	AnswerTimeout time.Duration
}

// DefaultQueryConfig returns sensible defaults
func DefaultQueryConfig() QueryConfig {
	return QueryConfig{
		Ranking:       domain.DefaultRankingConfig(),
		Concurrency:   8,
		EmbedTimeout:  3 * time.Second,
		AnswerTimeout: 30 * time.Second,
	}
}

// queryService implements the QueryService interface
type queryService struct {
	index    driven.RecordingIndex
	store    driven.TranscriptStore
	services *runtime.Services // Dynamic AI services
	cfg      QueryConfig
	logger   *slog.Logger
}

// NewQueryService creates a new QueryService.
// AI services (embedding, LLM) are accessed dynamically via runtime.Services
// so tests and the settings API can swap providers without process-wide state.
func NewQueryService(
	index driven.RecordingIndex,
	store driven.TranscriptStore,
	services *runtime.Services,
	cfg QueryConfig,
	logger *slog.Logger,
) driving.QueryService {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 8
	}
	if cfg.EmbedTimeout <= 0 {
		cfg.EmbedTimeout = 3 * time.Second
	}
	if cfg.AnswerTimeout <= 0 {
		cfg.AnswerTimeout = 30 * time.Second
	}
	if cfg.Ranking.MinTermLength <= 0 {
		cfg.Ranking = domain.DefaultRankingConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &queryService{
		index:    index,
		store:    store,
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}

// Query runs the retrieval pipeline: validate, resolve candidates, embed the
// query, fan out fetch-and-score per recording, then merge, rank and format.
// Only validation failures return an error; everything downstream degrades
// into fewer or no results.
func (s *queryService) Query(ctx context.Context, req domain.QueryRequest) (*domain.QueryResponse, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp := &domain.QueryResponse{
		Success: true,
		Query:   req.Query,
		Results: []domain.RankedResult{},
	}

	// Resolve candidate recordings. An index failure is degraded to an
	// empty result set: this read path never turns one bad dependency
	// into a caller-visible error.
	candidates, err := s.index.ListSearchable(ctx, req.TenantID, req.From, req.To, domain.MaxCandidateRecordings)
	if err != nil {
		s.logger.Error("recording index lookup failed", "tenant", req.TenantID, "error", err)
		candidates = nil
	}
	if len(candidates) == 0 {
		resp.Mode = s.services.Config().EffectiveSearchMode()
		resp.Message = "No transcribed recordings found for this query."
		resp.Took = time.Since(start)
		return resp, nil
	}

	queryEmbedding := s.embedQuery(ctx, req.Query)
	resp.Mode = domain.SearchModeHybrid
	if queryEmbedding == nil {
		resp.Mode = domain.SearchModeKeywordOnly
	}

	// Per-recording fan-out. Recordings are independent, so fetch-and-score
	// runs concurrently up to the configured bound. Workers record results
	// by candidate position and never fail the group: a missing or corrupt
	// transcript skips that recording only.
	perRecording := make([][]domain.RankedResult, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)
	for i, rec := range candidates {
		g.Go(func() error {
			perRecording[i] = s.scoreRecording(gctx, rec, req, queryEmbedding)
			return nil
		})
	}
	_ = g.Wait()

	var merged []domain.RankedResult
	for _, rs := range perRecording {
		merged = append(merged, rs...)
	}

	sortResults(merged)

	resp.TotalMatches = len(merged)
	if len(merged) > req.Limit {
		merged = merged[:req.Limit]
	}

	// Attach absolute timestamps
	for i := range merged {
		offset := time.Duration(merged[i].SegmentStart * float64(time.Second))
		merged[i].RecordedAt = merged[i].StartedAt.Add(offset)
	}
	resp.Results = merged

	if len(merged) == 0 {
		resp.Message = "No matching memories found."
	} else if req.IncludeAnswer {
		resp.Answer = s.synthesizeAnswer(ctx, req.Query, merged)
	}

	resp.Took = time.Since(start)
	return resp, nil
}

// embedQuery obtains the query embedding within a bounded timeout.
// Returns nil when the provider is missing, slow or failing; semantic
// search is an enhancement, not a dependency.
func (s *queryService) embedQuery(ctx context.Context, query string) []float32 {
	embedder := s.services.EmbeddingService()
	if embedder == nil {
		return nil
	}

	embedCtx, cancel := context.WithTimeout(ctx, s.cfg.EmbedTimeout)
	defer cancel()

	embedding, err := embedder.EmbedQuery(embedCtx, query)
	if err != nil {
		s.logger.Warn("query embedding failed, falling back to keyword-only", "error", err)
		return nil
	}
	if len(embedding) == 0 {
		s.logger.Warn("empty query embedding, falling back to keyword-only")
		return nil
	}
	return embedding
}

// scoreRecording fetches one transcript and runs both matchers plus fusion.
// Returns nil on any failure; partial results are acceptable and a single
// bad recording must never abort the query.
func (s *queryService) scoreRecording(ctx context.Context, rec domain.RecordingRecord, req domain.QueryRequest, queryEmbedding []float32) []domain.RankedResult {
	transcript, err := s.store.Fetch(ctx, rec.TranscriptKey)
	if err != nil {
		s.logger.Warn("skipping recording",
			"recording", rec.RecordingID,
			"key", rec.TranscriptKey,
			"error", err,
		)
		return nil
	}

	keyword, termCount := matchKeywords(transcript, req.Query, req.Speaker, s.cfg.Ranking)
	semantic, anomalies := matchSemantic(transcript, queryEmbedding, req.Speaker, s.cfg.Ranking)
	if anomalies > 0 {
		s.logger.Warn("segment embeddings with mismatched dimension",
			"recording", rec.RecordingID,
			"segments", anomalies,
		)
	}

	return fuseScores(transcript, rec, keyword, termCount, semantic, queryEmbedding != nil, s.cfg.Ranking)
}

// sortResults orders results by relevance descending with deterministic
// tie-breaks: more recent recordings win ties, matching the recency bias
// used for candidate capping, then recording id and segment index pin down
// a stable total order.
func sortResults(results []domain.RankedResult) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.RelevanceScore != b.RelevanceScore {
			return a.RelevanceScore > b.RelevanceScore
		}
		if !a.StartedAt.Equal(b.StartedAt) {
			return a.StartedAt.After(b.StartedAt)
		}
		if a.RecordingID != b.RecordingID {
			return a.RecordingID < b.RecordingID
		}
		return a.SegmentIndex < b.SegmentIndex
	})
}

// synthesizeAnswer feeds the top results to the LLM service and returns a
// natural-language answer. Unavailability or failure is silent: the search
// results stand on their own.
func (s *queryService) synthesizeAnswer(ctx context.Context, question string, results []domain.RankedResult) string {
	llm := s.services.LLMService()
	if llm == nil {
		return ""
	}

	answerCtx, cancel := context.WithTimeout(ctx, s.cfg.AnswerTimeout)
	defer cancel()

	answer, err := llm.Answer(answerCtx, question, formatAnswerContext(results))
	if err != nil {
		s.logger.Warn("answer synthesis failed", "error", err)
		return ""
	}
	return answer
}

// formatAnswerContext renders retrieved passages into the context block fed
// to the LLM: one excerpt per result with its recording metadata.
func formatAnswerContext(results []domain.RankedResult) string {
	var b strings.Builder
	for i, r := range results {
		fmt.Fprintf(&b, "[Recording %d]\n", i+1)
		fmt.Fprintf(&b, "Date: %s\n", r.RecordedAt.Format("2006-01-02 15:04"))
		fmt.Fprintf(&b, "Recording ID: %s\n", r.RecordingID)
		fmt.Fprintf(&b, "Device: %s\n", r.DeviceID)
		fmt.Fprintf(&b, "Time in recording: %.0fs - %.0fs\n", r.SegmentStart, r.SegmentEnd)
		if len(r.Topics) > 0 {
			fmt.Fprintf(&b, "Topics: %s\n", strings.Join(r.Topics, ", "))
		}
		fmt.Fprintf(&b, "\nTranscript:\n%s\n\n", r.ContextText)
	}
	return b.String()
}
