package matches

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mirfanaieng/resume-tailor-ai/internal/pipeline"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Match
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Match),
	}
}

// Create stores a new match job.
func (r *MemoryRepo) Create(ctx context.Context, m Match) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[m.ID] = m
	return nil
}

// GetByID returns a match by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Match, error) {
	if err := ctx.Err(); err != nil {
		return Match{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.data[id]
	if !ok {
		return Match{}, ErrNotFound
	}
	return m, nil
}

// List returns matches newest first, honoring limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	out := make([]Match, 0, len(r.data))
	for _, m := range r.data {
		out = append(out, m)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if offset >= len(out) {
		return []Match{}, nil
	}
	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

// UpdateStatus moves a match through its lifecycle.
func (r *MemoryRepo) UpdateStatus(ctx context.Context, id, status string, result *pipeline.MatchResult, errorMessage string, completedAt *time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.data[id]
	if !ok {
		return ErrNotFound
	}
	m.Status = status
	m.Result = result
	m.ErrorMessage = errorMessage
	m.CompletedAt = completedAt
	r.data[id] = m
	return nil
}
