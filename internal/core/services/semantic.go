package services

import (
	"math"

	"github.com/rem-labs/rem-core/internal/core/domain"
)

// semanticMatch is a per-segment similarity above the relevance floor
type semanticMatch struct {
	SegmentIndex int
	Similarity   float64
}

// cosineSimilarity computes dot(a,b) / (|a| * |b|).
// A zero-magnitude vector yields 0, never NaN.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		av, bv := float64(a[i]), float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// matchSemantic scores embedded segments against the query embedding.
// Segments below the similarity floor are dropped entirely: embeddings
// produce many weak false positives below that band. Segments whose stored
// embedding does not match the query dimension are skipped and counted as
// anomalies; their keyword score is unaffected.
// A nil query embedding contributes nothing (keyword-only mode).
func matchSemantic(t *domain.Transcript, queryEmbedding []float32, speaker string, cfg domain.RankingConfig) (matches []semanticMatch, anomalies int) {
	if len(queryEmbedding) == 0 {
		return nil, 0
	}

	for i := range t.Segments {
		seg := &t.Segments[i]
		if seg.Text == "" || !seg.HasEmbedding() {
			continue
		}
		if speaker != "" && seg.Speaker != speaker {
			continue
		}
		if len(seg.Embedding) != len(queryEmbedding) {
			anomalies++
			continue
		}

		sim := cosineSimilarity(queryEmbedding, seg.Embedding)
		if sim >= cfg.SimilarityFloor {
			matches = append(matches, semanticMatch{
				SegmentIndex: i,
				Similarity:   sim,
			})
		}
	}

	return matches, anomalies
}
