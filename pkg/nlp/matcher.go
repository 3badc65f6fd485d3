package nlp

import (
	"math"
	"strings"
	"unicode/utf8"

	"PoderBackend/pkg/kb"
)

const (
	keywordWeight      = 2.0
	questionWordWeight = 0.5
	minimumScore       = 2.0
	confidenceDivisor  = 10.0
	questionWordMinLen = 3
)

// Match finds the single best-scoring entry for a free-form query.
//
// Keywords match as case-insensitive substrings of the query (tolerates
// phrasing variance and multi-word keyword phrases) and count 2.0 each.
// Words of the canonical question longer than three characters count 0.5
// each. A best score below 2.0 — less than one full keyword hit — is no
// match. Ties keep the first entry in table order.
func Match(query string, entries []kb.Entry) *MatchResult {
	normalized := strings.ToLower(strings.TrimSpace(query))

	var best *MatchResult
	highest := 0.0

	for _, entry := range entries {
		score := 0.0

		for _, keyword := range entry.Keywords {
			if strings.Contains(normalized, strings.ToLower(keyword)) {
				score += keywordWeight
			}
		}

		for _, word := range strings.Fields(strings.ToLower(entry.Question)) {
			if utf8.RuneCountInString(word) > questionWordMinLen && strings.Contains(normalized, word) {
				score += questionWordWeight
			}
		}

		if score > highest {
			highest = score
			best = &MatchResult{Entry: entry, Score: score}
		}
	}

	if best == nil || highest < minimumScore {
		return nil
	}

	best.Confidence = math.Min(best.Score/confidenceDivisor, 1.0)
	return best
}
