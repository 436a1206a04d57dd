package services

import (
	"strings"

	"github.com/rem-labs/rem-core/internal/core/domain"
)

// keywordMatch is a raw keyword hit for one transcript segment.
// Score is unnormalized; normalization against the query term count
// happens during fusion so this stays a pure counting pass.
type keywordMatch struct {
	SegmentIndex int
	Score        float64
	ExactPhrase  bool
}

// tokenizeQuery splits a query into lowercase search terms. Terms at or
// below the minimum length are treated as stop-words to avoid noise from
// articles and prepositions.
func tokenizeQuery(query string, minTermLength int) []string {
	var terms []string
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		if len(tok) >= minTermLength {
			terms = append(terms, tok)
		}
	}
	return terms
}

// matchKeywords scores a transcript's segments against the raw query string.
// A segment containing the full query as a substring is an exact-phrase
// match worth ExactPhraseBoost times the term count, so exact phrases always
// outrank pure term overlap. Otherwise the score is the number of query
// terms present in the segment. Zero-score segments are dropped.
// Returns the matches and the query term count.
func matchKeywords(t *domain.Transcript, query, speaker string, cfg domain.RankingConfig) ([]keywordMatch, int) {
	phrase := strings.ToLower(strings.TrimSpace(query))
	terms := tokenizeQuery(query, cfg.MinTermLength)
	if len(terms) == 0 {
		return nil, 0
	}

	var matches []keywordMatch
	for i := range t.Segments {
		seg := &t.Segments[i]
		if seg.Text == "" {
			continue // non-speech segment
		}
		if speaker != "" && seg.Speaker != speaker {
			continue
		}

		text := strings.ToLower(seg.Text)
		if strings.Contains(text, phrase) {
			matches = append(matches, keywordMatch{
				SegmentIndex: i,
				Score:        cfg.ExactPhraseBoost * float64(len(terms)),
				ExactPhrase:  true,
			})
			continue
		}

		hits := 0
		for _, term := range terms {
			if strings.Contains(text, term) {
				hits++
			}
		}
		if hits > 0 {
			matches = append(matches, keywordMatch{
				SegmentIndex: i,
				Score:        float64(hits),
			})
		}
	}

	return matches, len(terms)
}
