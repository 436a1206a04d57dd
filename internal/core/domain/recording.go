package domain

import "time"

// RecordingStatus tracks a recording through the processing pipeline.
// A recording becomes searchable exactly once, when it reaches
// StatusTranscribed; this engine treats it as immutable from then on.
type RecordingStatus string

const (
	StatusUploaded    RecordingStatus = "UPLOADED"
	StatusProcessing  RecordingStatus = "PROCESSING"
	StatusTranscribed RecordingStatus = "TRANSCRIBED"
	StatusFailed      RecordingStatus = "FAILED"
)

// RecordingRecord is the metadata entry used for candidate selection,
// keyed by (tenant, recording).
type RecordingRecord struct {
	TenantID        string          `json:"tenant_id"`
	RecordingID     string          `json:"recording_id"`
	DeviceID        string          `json:"device_id"`
	Status          RecordingStatus `json:"status"`
	StartedAt       time.Time       `json:"started_at"`
	DurationSeconds float64         `json:"duration_seconds,omitempty"`
	Language        string          `json:"language,omitempty"`
	TranscriptKey   string          `json:"transcript_key,omitempty"`
	Summary         string          `json:"summary,omitempty"`
	Topics          []string        `json:"topics,omitempty"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// IsSearchable reports whether the recording is eligible for search.
// Only fully processed recordings participate; anything mid-pipeline or
// failed is excluded from candidate selection.
func (r *RecordingRecord) IsSearchable() bool {
	return r.Status == StatusTranscribed && r.TranscriptKey != ""
}
