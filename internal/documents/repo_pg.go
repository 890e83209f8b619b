package documents

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements DocumentsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    file_name,
    doc_type,
    mime_type,
    size_bytes,
    storage_key,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	docType := doc.DocType
	if docType == "" {
		docType = TypeResume
	}

	var storageKey sql.NullString
	if doc.StorageKey != "" {
		storageKey = sql.NullString{String: doc.StorageKey, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.FileName,
		docType,
		doc.MimeType,
		doc.SizeBytes,
		storageKey,
		doc.CreatedAt,
	)
	return err
}

const documentColumns = `id, file_name, doc_type, mime_type, size_bytes, storage_key, text_key, extracted_at, created_at`

// GetByID returns a document by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM documents
WHERE id = $1`

	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, ErrNotFound
	}
	return doc, err
}

// List returns documents newest first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM documents
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

	docs := []Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// UpdateExtraction records the extracted text location once per document.
func (r *PGRepo) UpdateExtraction(ctx context.Context, id, textKey string, extractedAt time.Time) error {
	const query = `
UPDATE documents
SET text_key = $2, extracted_at = $3
WHERE id = $1 AND text_key IS NULL`

	res, err := r.DB.ExecContext(ctx, query, id, textKey, extractedAt)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var (
		doc         Document
		mimeType    sql.NullString
		storageKey  sql.NullString
		textKey     sql.NullString
		extractedAt sql.NullTime
	)
	err := row.Scan(
		&doc.ID,
		&doc.FileName,
		&doc.DocType,
		&mimeType,
		&doc.SizeBytes,
		&storageKey,
		&textKey,
		&extractedAt,
		&doc.CreatedAt,
	)
	if err != nil {
		return Document{}, err
	}
	doc.MimeType = mimeType.String
	doc.StorageKey = storageKey.String
	doc.TextKey = textKey.String
	if extractedAt.Valid {
		t := extractedAt.Time
		doc.ExtractedAt = &t
	}
	return doc, nil
}
