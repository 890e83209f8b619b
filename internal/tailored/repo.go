package tailored

import "context"

// Repo defines persistence operations for tailored outputs.
type Repo interface {
	Create(ctx context.Context, t Tailored) error
	GetByID(ctx context.Context, id string) (Tailored, error)
	ListByMatch(ctx context.Context, matchID string) ([]Tailored, error)
}
