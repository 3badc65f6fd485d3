package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PoderBackend/pkg/kb"
)

func searchEntries() []kb.Entry {
	return []kb.Entry{
		{
			ID:       "ice-at-door",
			Question: "What do I do if ICE is at my door?",
			Keywords: []string{"ice", "door", "knock"},
		},
		{
			ID:       "open-the-door",
			Question: "Do I have to open the door?",
			Keywords: []string{"door", "open"},
		},
		{
			ID:       "right-to-lawyer",
			Question: "Can I ask for a lawyer?",
			Keywords: []string{"lawyer", "attorney"},
		},
	}
}

func TestSearch_RanksQuestionHitsAboveKeywordOnlyHits(t *testing.T) {
	entries := []kb.Entry{
		{ID: "keyword-only", Question: "Unrelated wording", Keywords: []string{"warrant"}},
		{ID: "question-hit", Question: "What is a judicial warrant?", Keywords: []string{"order"}},
	}

	results := Search("warrant", entries, 10)

	require.Len(t, results, 2)
	assert.Equal(t, "question-hit", results[0].Entry.ID)
	assert.InDelta(t, 5.0, results[0].Score, 1e-9)
	assert.Equal(t, "keyword-only", results[1].Entry.ID)
	assert.InDelta(t, 2.0, results[1].Score, 1e-9)
}

func TestSearch_QuestionAndKeywordHitsAccumulate(t *testing.T) {
	results := Search("door", searchEntries(), 10)

	require.Len(t, results, 2)
	// both score 5 + 2, table order is the stable tie-break
	assert.Equal(t, "ice-at-door", results[0].Entry.ID)
	assert.Equal(t, "open-the-door", results[1].Entry.ID)
	assert.InDelta(t, 7.0, results[0].Score, 1e-9)
	assert.InDelta(t, 7.0, results[1].Score, 1e-9)
}

func TestSearch_ZeroScoringEntriesAreDropped(t *testing.T) {
	results := Search("lawyer", searchEntries(), 10)

	require.Len(t, results, 1)
	assert.Equal(t, "right-to-lawyer", results[0].Entry.ID)
}

func TestSearch_EmptyTermReturnsNothing(t *testing.T) {
	assert.Empty(t, Search("", searchEntries(), 10))
	assert.Empty(t, Search("   ", searchEntries(), 10))
}

func TestSearch_NoHitsReturnsNothing(t *testing.T) {
	assert.Empty(t, Search("zzzzz", searchEntries(), 10))
}

func TestSearch_LimitCapsResults(t *testing.T) {
	results := Search("door", searchEntries(), 1)

	require.Len(t, results, 1)
	assert.Equal(t, "ice-at-door", results[0].Entry.ID)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	lower := Search("door", searchEntries(), 10)
	upper := Search("DOOR", searchEntries(), 10)

	require.Equal(t, len(lower), len(upper))
	for i := range lower {
		assert.Equal(t, lower[i].Entry.ID, upper[i].Entry.ID)
	}
}
