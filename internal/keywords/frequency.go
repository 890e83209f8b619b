package keywords

import (
	"context"
	"sort"
	"strings"
	"unicode"
)

// stopWords filters common English words that add noise to keyword ranking.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "high": true,
	"good": true, "able": true, "get": true, "set": true, "such": true,
}

// FrequencyRanker is a deterministic rule-based Ranker: candidate phrases of
// 1..maxPhraseWords consecutive tokens are scored by occurrence count times
// phrase length, ties broken lexicographically.
type FrequencyRanker struct{}

// NewFrequencyRanker constructs a FrequencyRanker.
func NewFrequencyRanker() *FrequencyRanker {
	return &FrequencyRanker{}
}

// RankKeyphrases returns up to topN lowercase phrases ranked by importance.
func (r *FrequencyRanker) RankKeyphrases(ctx context.Context, text string, maxPhraseWords, topN int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" || topN <= 0 {
		return nil, nil
	}
	if maxPhraseWords < 1 {
		maxPhraseWords = 1
	}

	counts := make(map[string]int)
	for _, line := range strings.Split(strings.ToLower(text), "\n") {
		tokens := tokenize(line)
		for width := 1; width <= maxPhraseWords; width++ {
			for i := 0; i+width <= len(tokens); i++ {
				gram := tokens[i : i+width]
				// A phrase must not start or end on a stop word.
				if stopWords[gram[0]] || stopWords[gram[width-1]] {
					continue
				}
				counts[strings.Join(gram, " ")]++
			}
		}
	}

	phrases := make([]string, 0, len(counts))
	for p := range counts {
		phrases = append(phrases, p)
	}
	sort.Slice(phrases, func(i, j int) bool {
		si, sj := score(phrases[i], counts[phrases[i]]), score(phrases[j], counts[phrases[j]])
		if si != sj {
			return si > sj
		}
		return phrases[i] < phrases[j]
	})

	if len(phrases) > topN {
		phrases = phrases[:topN]
	}
	return phrases, nil
}

func score(phrase string, count int) int {
	return count * (strings.Count(phrase, " ") + 1)
}

// tokenize splits a lowercase line into keyword tokens of >= 3 runes,
// preserving tech suffixes like "c++", "c#", and "node.js".
func tokenize(line string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len([]rune(w)) >= 3 {
			tokens = append(tokens, w)
		}
	}
	for _, r := range line {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}
