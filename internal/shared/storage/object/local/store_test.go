package local

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	store := New(t.TempDir())

	key, size, mimeType, err := store.Save(context.Background(), "doc-123", "resume.txt", strings.NewReader("hello world"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len("hello world")) {
		t.Fatalf("expected size %d, got %d", len("hello world"), size)
	}
	if !strings.HasPrefix(mimeType, "text/plain") {
		t.Fatalf("expected text/plain mime, got %q", mimeType)
	}

	rc, err := store.Open(context.Background(), key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	body, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(body) != "hello world" {
		t.Fatalf("expected body %q, got %q", "hello world", string(body))
	}
}

func TestOpenRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())

	for _, key := range []string{"../secret", "/etc/passwd", "a/../../b"} {
		if _, err := store.Open(context.Background(), key); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
}

func TestSaveWithKeyWritesAtExactKey(t *testing.T) {
	store := New(t.TempDir())

	n, err := store.SaveWithKey(context.Background(), "tailored/out.docx", "application/octet-stream", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("SaveWithKey: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 bytes written, got %d", n)
	}

	rc, err := store.Open(context.Background(), "tailored/out.docx")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	rc.Close()
}
