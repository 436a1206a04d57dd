package services

import (
	"strings"

	"github.com/rem-labs/rem-core/internal/core/domain"
)

// segmentKey identifies a segment across the two matchers. A struct key
// avoids the dedup collisions a formatted "recordingId-start" string can
// produce from float formatting differences.
type segmentKey struct {
	recordingID  string
	segmentIndex int
}

// fuseScores merges keyword and semantic matches for one transcript into
// RankedResults with context windows attached. Output is unsorted; the
// global sort happens once in the orchestrator.
//
// Hybrid scoring: final = keywordWeight*(raw/termCount) + semanticWeight*sim.
// The normalized keyword score is deliberately not capped at 1.0 - an
// exact-phrase match normalizes to ExactPhraseBoost, keeping phrases
// privileged after fusion. When hybrid is false (no query embedding at all)
// raw keyword scores pass through unweighted: degraded, not failed.
func fuseScores(
	t *domain.Transcript,
	rec domain.RecordingRecord,
	keyword []keywordMatch,
	termCount int,
	semantic []semanticMatch,
	hybrid bool,
	cfg domain.RankingConfig,
) []domain.RankedResult {
	type fused struct {
		keywordRaw float64
		similarity float64
	}

	scores := make(map[segmentKey]fused)
	for _, m := range keyword {
		key := segmentKey{t.RecordingID, m.SegmentIndex}
		f := scores[key]
		f.keywordRaw = m.Score
		scores[key] = f
	}
	for _, m := range semantic {
		key := segmentKey{t.RecordingID, m.SegmentIndex}
		f := scores[key]
		f.similarity = m.Similarity
		scores[key] = f
	}

	results := make([]domain.RankedResult, 0, len(scores))
	for key, f := range scores {
		var score float64
		if hybrid {
			var normalized float64
			if termCount > 0 {
				normalized = f.keywordRaw / float64(termCount)
			}
			score = cfg.KeywordWeight*normalized + cfg.SemanticWeight*f.similarity
		} else {
			score = f.keywordRaw
		}

		seg := &t.Segments[key.segmentIndex]
		results = append(results, domain.RankedResult{
			RecordingID:    t.RecordingID,
			DeviceID:       t.DeviceID,
			SegmentStart:   seg.Start,
			SegmentEnd:     seg.End,
			SegmentIndex:   key.segmentIndex,
			Speaker:        seg.Speaker,
			Text:           seg.Text,
			ContextText:    buildContext(t, key.segmentIndex),
			RelevanceScore: score,
			StartedAt:      rec.StartedAt,
			Topics:         t.Topics,
		})
	}

	return results
}

// buildContext concatenates the previous, matching, and next segment text.
// When the matching segment has a known speaker each part carries its tag,
// giving the reader conversational context without losing the focal match.
// Neighbor text is included regardless of speaker filtering.
func buildContext(t *domain.Transcript, i int) string {
	parts := t.ContextWindow(i)
	tag := t.Segments[i].Speaker
	if tag == "" {
		return strings.Join(parts, " ")
	}

	prefixed := make([]string, len(parts))
	for j, p := range parts {
		prefixed[j] = "[" + tag + "] " + p
	}
	return strings.Join(prefixed, " ")
}
