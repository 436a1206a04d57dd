package domain

import "fmt"

// TranscriptSegment is one contiguous span of speech within a recording.
// Segments are produced by the transcription worker and are immutable from
// the retrieval engine's point of view.
type TranscriptSegment struct {
	Start     float64   `json:"start"`
	End       float64   `json:"end"`
	Text      string    `json:"text"`
	Speaker   string    `json:"speaker,omitempty"`
	Embedding []float32 `json:"embedding,omitempty"`
}

// HasEmbedding reports whether this segment can participate in semantic search.
func (s *TranscriptSegment) HasEmbedding() bool {
	return len(s.Embedding) > 0
}

// Transcript is the full enriched output for one recording: ordered segments
// plus the document-level enhancements added by the enrichment stage.
// Segment order is chronological and defines context adjacency; the engine
// never reorders segments.
type Transcript struct {
	RecordingID     string              `json:"recordingId"`
	DeviceID        string              `json:"deviceId"`
	Language        string              `json:"language"`
	DurationSeconds float64             `json:"durationSeconds"`
	Segments        []TranscriptSegment `json:"segments"`
	FullText        string              `json:"fullText,omitempty"`
	Summary         string              `json:"summary,omitempty"`
	Topics          []string            `json:"topics,omitempty"`
	Speakers        []string            `json:"speakers,omitempty"`
	Embedding       []float32           `json:"embedding,omitempty"`
	TranscribedAt   string              `json:"transcribedAt,omitempty"`
}

// Validate checks the structural invariants a transcript must satisfy before
// it is allowed into scoring. Malformed documents are rejected at the storage
// boundary rather than propagating undefined values into ranking math.
func (t *Transcript) Validate() error {
	if t.RecordingID == "" {
		return fmt.Errorf("missing recordingId: %w", ErrCorruptData)
	}
	prevStart := -1.0
	for i, seg := range t.Segments {
		if seg.Start < 0 || seg.End < seg.Start {
			return fmt.Errorf("segment %d has invalid timing [%f, %f]: %w", i, seg.Start, seg.End, ErrCorruptData)
		}
		if seg.Start < prevStart {
			return fmt.Errorf("segment %d out of chronological order: %w", i, ErrCorruptData)
		}
		prevStart = seg.Start
	}
	return nil
}

// ContextWindow returns the text of the segments surrounding index i
// (previous, current, next), preserving segment order. Neighbors are included
// regardless of speaker; only matching is speaker-filtered.
func (t *Transcript) ContextWindow(i int) []string {
	var parts []string
	if i > 0 && t.Segments[i-1].Text != "" {
		parts = append(parts, t.Segments[i-1].Text)
	}
	parts = append(parts, t.Segments[i].Text)
	if i < len(t.Segments)-1 && t.Segments[i+1].Text != "" {
		parts = append(parts, t.Segments[i+1].Text)
	}
	return parts
}
