// Package extract pulls plain text out of resume and job description files.
// Text extraction is best-effort: an unreadable or unsupported file yields an
// empty string, not an error, so downstream parsing can degrade instead of abort.
package extract

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/mirfanaieng/resume-tailor-ai/internal/parse"
	"github.com/mirfanaieng/resume-tailor-ai/internal/shared/telemetry"
)

// ErrNotFound reports that the source file does not exist. Unlike format
// problems, a missing file is fatal for the document that referenced it.
var ErrNotFound = errors.New("document file not found")

// Extractor converts files into normalized plain text.
type Extractor struct{}

// New returns a ready Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Text reads the file at path and returns its normalized plain text.
// A missing file returns ErrNotFound. Unsupported extensions and extraction
// failures return an empty string and a nil error.
func (e *Extractor) Text(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("extract %s: %w", path, ErrNotFound)
		}
		return "", fmt.Errorf("extract %s: %w", path, err)
	}

	return e.TextFromBytes(ctx, data, filepath.Base(path))
}

// TextFromBytes extracts normalized plain text from an in-memory payload.
// The file name's extension selects the decoder.
func (e *Extractor) TextFromBytes(ctx context.Context, data []byte, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	var (
		text string
		err  error
	)
	switch ext {
	case ".txt", ".md":
		text = string(data)
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	default:
		telemetry.Warn("extract.unsupported", map[string]any{
			"fileName":  fileName,
			"extension": ext,
		})
		return "", nil
	}
	if err != nil {
		telemetry.Warn("extract.failed", map[string]any{
			"fileName": fileName,
			"error":    err.Error(),
		})
		return "", nil
	}

	return parse.Normalize(text), nil
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML flattens WordprocessingML into plain text, keeping paragraph
// and line-break boundaries as newlines.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if last := buf.Len(); last > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
