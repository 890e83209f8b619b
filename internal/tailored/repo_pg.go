package tailored

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new tailored output.
func (r *PGRepo) Create(ctx context.Context, t Tailored) error {
	const query = `
INSERT INTO tailored (
    id,
    match_id,
    provider,
    model,
    summary,
    skills,
    approved_keywords,
    docx_key,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	skills, err := json.Marshal(t.Skills)
	if err != nil {
		return err
	}
	approved, err := json.Marshal(t.ApprovedKeywords)
	if err != nil {
		return err
	}

	var docxKey sql.NullString
	if t.DocxKey != "" {
		docxKey = sql.NullString{String: t.DocxKey, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		t.ID,
		t.MatchID,
		t.Provider,
		t.Model,
		t.Summary,
		skills,
		approved,
		docxKey,
		t.CreatedAt,
	)
	return err
}

const tailoredColumns = `id, match_id, provider, model, summary, skills, approved_keywords, docx_key, created_at`

// GetByID returns a tailored output by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Tailored, error) {
	const query = `
SELECT ` + tailoredColumns + `
FROM tailored
WHERE id = $1`

	t, err := scanTailored(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Tailored{}, ErrNotFound
	}
	return t, err
}

// ListByMatch returns tailored outputs for a match, newest first.
func (r *PGRepo) ListByMatch(ctx context.Context, matchID string) ([]Tailored, error) {
	const query = `
SELECT ` + tailoredColumns + `
FROM tailored
WHERE match_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Tailored{}
	for rows.Next() {
		t, err := scanTailored(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTailored(row rowScanner) (Tailored, error) {
	var (
		t        Tailored
		model    sql.NullString
		summary  sql.NullString
		skills   []byte
		approved []byte
		docxKey  sql.NullString
	)
	err := row.Scan(
		&t.ID,
		&t.MatchID,
		&t.Provider,
		&model,
		&summary,
		&skills,
		&approved,
		&docxKey,
		&t.CreatedAt,
	)
	if err != nil {
		return Tailored{}, err
	}
	t.Model = model.String
	t.Summary = summary.String
	t.DocxKey = docxKey.String
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &t.Skills); err != nil {
			return Tailored{}, err
		}
	}
	if len(approved) > 0 {
		if err := json.Unmarshal(approved, &t.ApprovedKeywords); err != nil {
			return Tailored{}, err
		}
	}
	return t, nil
}
