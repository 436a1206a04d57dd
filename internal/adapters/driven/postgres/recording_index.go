package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/rem-labs/rem-core/internal/core/domain"
	"github.com/rem-labs/rem-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.RecordingIndex = (*RecordingIndex)(nil)

// RecordingIndex implements driven.RecordingIndex using PostgreSQL
type RecordingIndex struct {
	db *DB
}

// NewRecordingIndex creates a new RecordingIndex
func NewRecordingIndex(db *DB) *RecordingIndex {
	return &RecordingIndex{db: db}
}

const recordingColumns = `tenant_id, recording_id, device_id, status, started_at,
	   duration_seconds, language, transcript_key, summary, topics, updated_at`

// ListSearchable returns fully processed recordings for a tenant, most
// recent first. With a time range, only recordings started inside the
// inclusive [from, to] window qualify. At most max rows are returned.
func (r *RecordingIndex) ListSearchable(ctx context.Context, tenantID string, from, to *time.Time, max int) ([]domain.RecordingRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM recordings
		WHERE tenant_id = $1
		  AND status = $2
		  AND transcript_key != ''
		  AND ($3::timestamptz IS NULL OR started_at >= $3)
		  AND ($4::timestamptz IS NULL OR started_at <= $4)
		ORDER BY started_at DESC, recording_id ASC
		LIMIT $5
	`, recordingColumns)

	rows, err := r.db.QueryContext(ctx, query,
		tenantID, string(domain.StatusTranscribed), NullTime(from), NullTime(to), max)
	if err != nil {
		return nil, fmt.Errorf("list searchable recordings: %w", err)
	}
	defer rows.Close()

	var records []domain.RecordingRecord
	for rows.Next() {
		rec, err := scanRecording(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recordings: %w", err)
	}

	return records, nil
}

// Get retrieves a single recording record
func (r *RecordingIndex) Get(ctx context.Context, tenantID, recordingID string) (*domain.RecordingRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM recordings
		WHERE tenant_id = $1 AND recording_id = $2
	`, recordingColumns)

	rec, err := scanRecording(r.db.QueryRowContext(ctx, query, tenantID, recordingID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get recording: %w", err)
	}

	return rec, nil
}

// scanner covers both sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanRecording(s scanner) (*domain.RecordingRecord, error) {
	var rec domain.RecordingRecord
	var status string
	var topics pq.StringArray

	err := s.Scan(
		&rec.TenantID,
		&rec.RecordingID,
		&rec.DeviceID,
		&status,
		&rec.StartedAt,
		&rec.DurationSeconds,
		&rec.Language,
		&rec.TranscriptKey,
		&rec.Summary,
		&topics,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.Status = domain.RecordingStatus(status)
	rec.Topics = topics

	return &rec, nil
}
