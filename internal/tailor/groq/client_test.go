package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/mirfanaieng/resume-tailor-ai/internal/tailor"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", "test-model")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.apiURL = srv.URL
	return client, srv
}

func chatReply(t *testing.T, w http.ResponseWriter, content string) {
	t.Helper()
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		t.Fatalf("encode reply: %v", err)
	}
}

func TestTailorParsesResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		chatReply(t, w, `{"summary":"Seasoned engineer targeting backend roles.","skills_to_add":["Kubernetes"],"justification":"jd asks for k8s"}`)
	})

	got, err := client.Tailor(context.Background(), tailor.Input{
		CandidateName:    "Jane Doe",
		TargetRole:       "Backend Engineer",
		CurrentSkills:    []string{"python", "docker"},
		ApprovedKeywords: []string{"kubernetes"},
	})
	if err != nil {
		t.Fatalf("Tailor: %v", err)
	}
	if got.Summary == "" {
		t.Fatal("expected non-empty summary")
	}
	wantSkills := []string{"Python", "Docker", "Kubernetes"}
	if !reflect.DeepEqual(got.FinalSkills, wantSkills) {
		t.Fatalf("expected final skills %v, got %v", wantSkills, got.FinalSkills)
	}
	if got.AddedCount != 1 {
		t.Fatalf("expected 1 added skill, got %d", got.AddedCount)
	}
}

func TestTailorRepairsInvalidJSON(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			chatReply(t, w, "Sorry, I could not produce JSON this time.")
			return
		}
		chatReply(t, w, `{"summary":"fixed","skills_to_add":[]}`)
	})

	got, err := client.Tailor(context.Background(), tailor.Input{CandidateName: "Jane"})
	if err != nil {
		t.Fatalf("Tailor: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected one repair round-trip, got %d calls", calls)
	}
	if got.Summary != "fixed" {
		t.Fatalf("expected repaired summary, got %q", got.Summary)
	}
}

func TestTailorSurfacesAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limited", "type": "rate_limit"},
		})
	})

	if _, err := client.Tailor(context.Background(), tailor.Input{}); err == nil {
		t.Fatal("expected error from API error payload")
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient("", "model"); err == nil {
		t.Fatal("expected error without api key")
	}
}
