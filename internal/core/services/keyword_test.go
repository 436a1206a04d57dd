package services

import (
	"testing"

	"github.com/rem-labs/rem-core/internal/core/domain"
)

func testTranscript(texts ...string) *domain.Transcript {
	t := &domain.Transcript{
		RecordingID: "rec-1",
		DeviceID:    "dev-1",
	}
	start := 0.0
	for _, text := range texts {
		t.Segments = append(t.Segments, domain.TranscriptSegment{
			Start: start,
			End:   start + 5,
			Text:  text,
		})
		start += 5
	}
	return t
}

func TestTokenizeQuery(t *testing.T) {
	cases := []struct {
		query string
		want  []string
	}{
		{"the deadline is on Friday", []string{"the", "deadline", "friday"}},
		{"a an to", nil},
		{"", nil},
		{"  Deployment  AWS  ", []string{"deployment", "aws"}},
	}

	for _, tc := range cases {
		got := tokenizeQuery(tc.query, 3)
		if len(got) != len(tc.want) {
			t.Errorf("tokenizeQuery(%q) = %v, want %v", tc.query, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("tokenizeQuery(%q)[%d] = %q, want %q", tc.query, i, got[i], tc.want[i])
			}
		}
	}
}

func TestMatchKeywords_ExactPhrasePriority(t *testing.T) {
	// A segment containing the full query must outscore any segment
	// matching only a subset of the terms.
	transcript := testTranscript(
		"we need to finish the project deadline tomorrow",
		"the project was fun",
		"nothing relevant here at all",
	)

	matches, termCount := matchKeywords(transcript, "project deadline", "", domain.DefaultRankingConfig())
	if termCount != 2 {
		t.Fatalf("expected 2 terms, got %d", termCount)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	byIndex := map[int]keywordMatch{}
	for _, m := range matches {
		byIndex[m.SegmentIndex] = m
	}

	exact, ok := byIndex[0]
	if !ok || !exact.ExactPhrase {
		t.Fatal("expected segment 0 to be an exact-phrase match")
	}
	if exact.Score != 4 { // 2.0 boost x 2 terms
		t.Errorf("expected exact-phrase score 4, got %f", exact.Score)
	}

	partial, ok := byIndex[1]
	if !ok || partial.ExactPhrase {
		t.Fatal("expected segment 1 to be a partial match")
	}
	if partial.Score != 1 {
		t.Errorf("expected partial score 1, got %f", partial.Score)
	}
	if exact.Score <= partial.Score {
		t.Error("exact-phrase match must outscore partial match")
	}
}

func TestMatchKeywords_ZeroScoresDropped(t *testing.T) {
	transcript := testTranscript(
		"I'm really stressed about the deadline",
		"Let's grab lunch",
		"The deadline is Friday",
	)

	matches, _ := matchKeywords(transcript, "stressed", "", domain.DefaultRankingConfig())
	if len(matches) != 1 {
		t.Fatalf("expected exactly 1 match, got %d", len(matches))
	}
	if matches[0].SegmentIndex != 0 {
		t.Errorf("expected segment 0, got %d", matches[0].SegmentIndex)
	}
	if !matches[0].ExactPhrase {
		t.Error("substring containment of the full query is an exact-phrase match")
	}
}

func TestMatchKeywords_CaseInsensitive(t *testing.T) {
	transcript := testTranscript("We discussed the AWS Deployment plan")

	matches, _ := matchKeywords(transcript, "aws deployment", "", domain.DefaultRankingConfig())
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if !matches[0].ExactPhrase {
		t.Error("expected case-insensitive exact-phrase match")
	}
}

func TestMatchKeywords_EmptySegmentsExcluded(t *testing.T) {
	transcript := testTranscript("", "deadline talk", "")

	matches, _ := matchKeywords(transcript, "deadline", "", domain.DefaultRankingConfig())
	if len(matches) != 1 || matches[0].SegmentIndex != 1 {
		t.Fatalf("expected only the non-empty segment to match, got %v", matches)
	}
}

func TestMatchKeywords_SpeakerFilter(t *testing.T) {
	transcript := testTranscript("deadline from alice", "deadline from bob")
	transcript.Segments[0].Speaker = "SPEAKER_00"
	transcript.Segments[1].Speaker = "SPEAKER_01"

	matches, _ := matchKeywords(transcript, "deadline", "SPEAKER_01", domain.DefaultRankingConfig())
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].SegmentIndex != 1 {
		t.Errorf("expected only SPEAKER_01's segment, got segment %d", matches[0].SegmentIndex)
	}
}

func TestMatchKeywords_AllShortTerms(t *testing.T) {
	transcript := testTranscript("it is ok")

	matches, termCount := matchKeywords(transcript, "it is", "", domain.DefaultRankingConfig())
	if termCount != 0 {
		t.Errorf("expected 0 terms for stop-word-only query, got %d", termCount)
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}
