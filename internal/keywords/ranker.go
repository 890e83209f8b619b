// Package keywords provides the keyword-ranking collaborator used by the
// skill-extraction fallback path.
package keywords

import "context"

// Ranker scores candidate keyphrases in a document and returns the top ones.
// Implementations must be deterministic for identical input.
type Ranker interface {
	RankKeyphrases(ctx context.Context, text string, maxPhraseWords, topN int) ([]string, error)
}

// Disabled is a Ranker that is feature-flagged off. It returns no phrases and
// no error so callers silently skip fallback enrichment.
type Disabled struct{}

// RankKeyphrases returns an empty result.
func (Disabled) RankKeyphrases(ctx context.Context, text string, maxPhraseWords, topN int) ([]string, error) {
	return nil, ctx.Err()
}
