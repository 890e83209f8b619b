package documents

import "time"

// Document represents an uploaded resume or job-description file.
type Document struct {
	ID          string
	FileName    string
	DocType     string
	MimeType    string
	SizeBytes   int64
	StorageKey  string
	TextKey     string
	ExtractedAt *time.Time
	CreatedAt   time.Time
}

// Recognized document types.
const (
	TypeResume = "resume"
	TypeJob    = "jd"
)
