package nlp

import (
	"math"
	"sort"
	"strings"

	"PoderBackend/pkg/kb"
)

const (
	searchQuestionWeight = 5.0
	searchKeywordWeight  = 2.0
)

// Search ranks every entry against a search term for suggestion lists.
// Unlike Match there is no confidence gate: any entry scoring above zero is a
// candidate, sorted descending with table order as the stable tie-break.
//
// An empty term scores zero for every entry and so returns nothing; callers
// wanting defaults should list entries directly.
func Search(term string, entries []kb.Entry, limit int) []MatchResult {
	normalized := strings.ToLower(strings.TrimSpace(term))
	if normalized == "" {
		return nil
	}

	var results []MatchResult
	for _, entry := range entries {
		score := 0.0

		if strings.Contains(strings.ToLower(entry.Question), normalized) {
			score += searchQuestionWeight
		}
		for _, keyword := range entry.Keywords {
			if strings.Contains(strings.ToLower(keyword), normalized) {
				score += searchKeywordWeight
			}
		}

		if score > 0 {
			results = append(results, MatchResult{
				Entry:      entry,
				Score:      score,
				Confidence: math.Min(score/confidenceDivisor, 1.0),
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
