package documents

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mirfanaieng/resume-tailor-ai/internal/extract"
	"github.com/mirfanaieng/resume-tailor-ai/internal/shared/storage/object"
	"github.com/mirfanaieng/resume-tailor-ai/internal/shared/telemetry"
)

// Service contains business logic for documents.
type Service struct {
	Store     object.ObjectStore
	Repo      DocumentsRepo
	Extractor *extract.Extractor
}

// Upload saves the file to object storage, records the document, and caches
// its extracted text. Extraction is best-effort: an unsupported or unreadable
// payload still produces a stored document.
func (s *Service) Upload(ctx context.Context, fileName, docType string, r io.Reader) (Document, error) {
	if strings.TrimSpace(fileName) == "" {
		return Document{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}
	docType = strings.ToLower(strings.TrimSpace(docType))
	if docType == "" {
		docType = TypeResume
	}
	if docType != TypeResume && docType != TypeJob {
		return Document{}, fmt.Errorf("%w: docType must be %q or %q", ErrInvalidInput, TypeResume, TypeJob)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read upload: %w", err)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, docType, fileName, bytes.NewReader(data))
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:         uuid.NewString(),
		FileName:   fileName,
		DocType:    docType,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	if text, err := s.Extractor.TextFromBytes(ctx, data, fileName); err == nil && text != "" {
		textKey := storageKey + ".extracted.txt"
		if _, err := s.Store.SaveWithKey(ctx, textKey, "text/plain; charset=utf-8", strings.NewReader(text)); err != nil {
			telemetry.Warn("documents.cache_text_failed", map[string]any{
				"documentId": doc.ID,
				"error":      err.Error(),
			})
			return doc, nil
		}
		extractedAt := time.Now().UTC()
		if err := s.Repo.UpdateExtraction(ctx, doc.ID, textKey, extractedAt); err == nil {
			doc.TextKey = textKey
			doc.ExtractedAt = &extractedAt
		}
	}

	return doc, nil
}

// Get returns a document by ID.
func (s *Service) Get(ctx context.Context, id string) (Document, error) {
	if strings.TrimSpace(id) == "" {
		return Document{}, fmt.Errorf("%w: document id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns stored documents, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Document, error) {
	return s.Repo.List(ctx, limit, offset)
}

// Text returns the extracted plain text for a document, re-extracting from
// the stored original when no cached copy exists.
func (s *Service) Text(ctx context.Context, doc Document) (string, error) {
	if doc.TextKey != "" {
		rc, err := s.Store.Open(ctx, doc.TextKey)
		if err == nil {
			defer rc.Close()
			raw, err := io.ReadAll(rc)
			if err == nil {
				return string(raw), nil
			}
		}
		telemetry.Warn("documents.cached_text_unreadable", map[string]any{
			"documentId": doc.ID,
		})
	}

	rc, err := s.Store.Open(ctx, doc.StorageKey)
	if err != nil {
		return "", fmt.Errorf("open document %s: %w", doc.ID, err)
	}
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read document %s: %w", doc.ID, err)
	}
	return s.Extractor.TextFromBytes(ctx, raw, doc.FileName)
}
