package tailored

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Tailored
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Tailored),
	}
}

// Create stores a new tailored output.
func (r *MemoryRepo) Create(ctx context.Context, t Tailored) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[t.ID] = t
	return nil
}

// GetByID returns a tailored output by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Tailored, error) {
	if err := ctx.Err(); err != nil {
		return Tailored{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.data[id]
	if !ok {
		return Tailored{}, ErrNotFound
	}
	return t, nil
}

// ListByMatch returns tailored outputs for a match, newest first.
func (r *MemoryRepo) ListByMatch(ctx context.Context, matchID string) ([]Tailored, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := []Tailored{}
	for _, t := range r.data {
		if t.MatchID == matchID {
			out = append(out, t)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
