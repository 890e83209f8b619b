package documents

import "time"

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	DocumentID string    `json:"documentId"`
	FileName   string    `json:"fileName"`
	DocType    string    `json:"docType"`
	MimeType   string    `json:"mimeType"`
	SizeBytes  int64     `json:"sizeBytes"`
	Extracted  bool      `json:"extracted"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		DocumentID: doc.ID,
		FileName:   doc.FileName,
		DocType:    doc.DocType,
		MimeType:   doc.MimeType,
		SizeBytes:  doc.SizeBytes,
		Extracted:  doc.TextKey != "",
		UploadedAt: doc.CreatedAt,
	}
}
