package documents

import (
	"context"
	"time"
)

// DocumentsRepo defines persistence operations for documents.
type DocumentsRepo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, id string) (Document, error)
	List(ctx context.Context, limit, offset int) ([]Document, error)
	UpdateExtraction(ctx context.Context, id, textKey string, extractedAt time.Time) error
}
