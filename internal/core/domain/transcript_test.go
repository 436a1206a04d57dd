package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestTranscript_Validate(t *testing.T) {
	tests := []struct {
		name       string
		transcript Transcript
		wantErr    bool
	}{
		{
			name: "valid transcript",
			transcript: Transcript{
				RecordingID: "rec-1",
				Segments: []TranscriptSegment{
					{Start: 0, End: 5, Text: "hello"},
					{Start: 5, End: 10, Text: "world"},
				},
			},
			wantErr: false,
		},
		{
			name: "valid with no segments",
			transcript: Transcript{
				RecordingID: "rec-1",
			},
			wantErr: false,
		},
		{
			name: "missing recording id",
			transcript: Transcript{
				Segments: []TranscriptSegment{{Start: 0, End: 5, Text: "hello"}},
			},
			wantErr: true,
		},
		{
			name: "negative start",
			transcript: Transcript{
				RecordingID: "rec-1",
				Segments:    []TranscriptSegment{{Start: -1, End: 5, Text: "hello"}},
			},
			wantErr: true,
		},
		{
			name: "end before start",
			transcript: Transcript{
				RecordingID: "rec-1",
				Segments:    []TranscriptSegment{{Start: 10, End: 5, Text: "hello"}},
			},
			wantErr: true,
		},
		{
			name: "out of chronological order",
			transcript: Transcript{
				RecordingID: "rec-1",
				Segments: []TranscriptSegment{
					{Start: 10, End: 15, Text: "second"},
					{Start: 0, End: 5, Text: "first"},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transcript.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrCorruptData) {
					t.Errorf("expected ErrCorruptData, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestTranscript_ContextWindow(t *testing.T) {
	transcript := Transcript{
		RecordingID: "rec-1",
		Segments: []TranscriptSegment{
			{Start: 0, End: 5, Text: "first"},
			{Start: 5, End: 10, Text: "second"},
			{Start: 10, End: 15, Text: "third"},
		},
	}

	tests := []struct {
		name  string
		index int
		want  []string
	}{
		{"first segment has no predecessor", 0, []string{"first", "second"}},
		{"middle segment gets both neighbors", 1, []string{"first", "second", "third"}},
		{"last segment has no successor", 2, []string{"second", "third"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transcript.ContextWindow(tt.index)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d parts, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("part %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestTranscript_ContextWindow_SkipsEmptyNeighbors(t *testing.T) {
	transcript := Transcript{
		RecordingID: "rec-1",
		Segments: []TranscriptSegment{
			{Start: 0, End: 5, Text: ""},
			{Start: 5, End: 10, Text: "the match"},
			{Start: 10, End: 15, Text: ""},
		},
	}

	got := transcript.ContextWindow(1)
	if len(got) != 1 || got[0] != "the match" {
		t.Errorf("expected only the matching segment, got %v", got)
	}
}

func TestTranscriptSegment_HasEmbedding(t *testing.T) {
	with := TranscriptSegment{Embedding: []float32{0.1, 0.2}}
	without := TranscriptSegment{}

	if !with.HasEmbedding() {
		t.Error("expected segment with vector to report embedding")
	}
	if without.HasEmbedding() {
		t.Error("expected segment without vector to report no embedding")
	}
}

// The wire format uses the transcription pipeline's camelCase field names.
func TestTranscript_JSONFieldNames(t *testing.T) {
	raw := `{
		"recordingId": "rec-1",
		"deviceId": "dev-1",
		"language": "en",
		"durationSeconds": 12.5,
		"segments": [
			{"start": 0, "end": 5, "text": "hello", "speaker": "SPEAKER_00", "embedding": [0.1, 0.2]}
		],
		"fullText": "hello",
		"summary": "a greeting",
		"topics": ["greetings"],
		"transcribedAt": "2024-03-01T10:00:00Z"
	}`

	var transcript Transcript
	if err := json.Unmarshal([]byte(raw), &transcript); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if transcript.RecordingID != "rec-1" {
		t.Errorf("expected rec-1, got %s", transcript.RecordingID)
	}
	if transcript.DeviceID != "dev-1" {
		t.Errorf("expected dev-1, got %s", transcript.DeviceID)
	}
	if len(transcript.Segments) != 1 || transcript.Segments[0].Speaker != "SPEAKER_00" {
		t.Errorf("unexpected segments: %+v", transcript.Segments)
	}
	if !transcript.Segments[0].HasEmbedding() {
		t.Error("expected segment embedding to decode")
	}
	if err := transcript.Validate(); err != nil {
		t.Errorf("expected valid transcript, got %v", err)
	}
}
