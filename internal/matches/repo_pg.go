package matches

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/mirfanaieng/resume-tailor-ai/internal/pipeline"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new match job.
func (r *PGRepo) Create(ctx context.Context, m Match) error {
	const query = `
INSERT INTO matches (
    id,
    resume_document_id,
    jd_document_id,
    jd_text,
    status,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6)`

	var jdDocID sql.NullString
	if m.JDDocumentID != "" {
		jdDocID = sql.NullString{String: m.JDDocumentID, Valid: true}
	}
	var jdText sql.NullString
	if m.JDText != "" {
		jdText = sql.NullString{String: m.JDText, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		m.ID,
		m.ResumeDocumentID,
		jdDocID,
		jdText,
		m.Status,
		m.CreatedAt,
	)
	return err
}

const matchColumns = `id, resume_document_id, jd_document_id, jd_text, status, report, error_message, created_at, completed_at`

// GetByID returns a match by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Match, error) {
	const query = `
SELECT ` + matchColumns + `
FROM matches
WHERE id = $1`

	m, err := scanMatch(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Match{}, ErrNotFound
	}
	return m, err
}

// List returns matches newest first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Match, error) {
	const query = `
SELECT ` + matchColumns + `
FROM matches
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Match{}
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// UpdateStatus moves a match through its lifecycle.
func (r *PGRepo) UpdateStatus(ctx context.Context, id, status string, result *pipeline.MatchResult, errorMessage string, completedAt *time.Time) error {
	const query = `
UPDATE matches
SET status = $2, report = $3, error_message = $4, completed_at = $5
WHERE id = $1`

	var report any
	if result != nil {
		raw, err := json.Marshal(result)
		if err != nil {
			return err
		}
		report = raw
	}
	var errMsg sql.NullString
	if errorMessage != "" {
		errMsg = sql.NullString{String: errorMessage, Valid: true}
	}
	var completed sql.NullTime
	if completedAt != nil {
		completed = sql.NullTime{Time: *completedAt, Valid: true}
	}

	res, err := r.DB.ExecContext(ctx, query, id, status, report, errMsg, completed)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (Match, error) {
	var (
		m           Match
		jdDocID     sql.NullString
		jdText      sql.NullString
		report      []byte
		errMsg      sql.NullString
		completedAt sql.NullTime
	)
	err := row.Scan(
		&m.ID,
		&m.ResumeDocumentID,
		&jdDocID,
		&jdText,
		&m.Status,
		&report,
		&errMsg,
		&m.CreatedAt,
		&completedAt,
	)
	if err != nil {
		return Match{}, err
	}
	m.JDDocumentID = jdDocID.String
	m.JDText = jdText.String
	m.ErrorMessage = errMsg.String
	if completedAt.Valid {
		t := completedAt.Time
		m.CompletedAt = &t
	}
	if len(report) > 0 {
		var result pipeline.MatchResult
		if err := json.Unmarshal(report, &result); err != nil {
			return Match{}, err
		}
		m.Result = &result
	}
	return m, nil
}
