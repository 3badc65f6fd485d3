package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PoderBackend/pkg/kb"
)

func matcherEntries() []kb.Entry {
	return []kb.Entry{
		{
			ID:       "ice-at-door",
			Question: "What do I do if ICE agents knock on my door?",
			Keywords: []string{"ice", "door", "knock", "agents"},
			Category: "immigration",
		},
		{
			ID:       "remain-silent",
			Question: "Do I have to answer questions from police?",
			Keywords: []string{"silent", "questions", "answer", "police"},
			Category: "police",
		},
		{
			ID:       "right-to-lawyer",
			Question: "Can I ask for a lawyer?",
			Keywords: []string{"lawyer", "attorney", "abogado"},
			Category: "police",
		},
	}
}

func TestMatch_KeywordScoring(t *testing.T) {
	entries := []kb.Entry{
		{
			ID:       "scoring-target",
			Question: "delta epsilon",
			Keywords: []string{"alpha", "beta", "gamma"},
		},
	}

	tests := []struct {
		name               string
		query              string
		expectedScore      float64
		expectedConfidence float64
		expectMatch        bool
	}{
		{
			name:               "one keyword is exactly the minimum score",
			query:              "alpha",
			expectedScore:      2.0,
			expectedConfidence: 0.2,
			expectMatch:        true,
		},
		{
			name:               "two keywords",
			query:              "alpha and beta",
			expectedScore:      4.0,
			expectedConfidence: 0.4,
			expectMatch:        true,
		},
		{
			name:               "three keywords plus both question words hits the trust boundary",
			query:              "alpha beta gamma delta epsilon",
			expectedScore:      7.0,
			expectedConfidence: 0.7,
			expectMatch:        true,
		},
		{
			name:        "question words alone stay below the minimum score",
			query:       "delta epsilon",
			expectMatch: false,
		},
		{
			name:        "no overlap at all",
			query:       "completely unrelated words",
			expectMatch: false,
		},
		{
			name:        "empty query",
			query:       "",
			expectMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Match(tt.query, entries)

			if !tt.expectMatch {
				assert.Nil(t, result)
				return
			}

			require.NotNil(t, result)
			assert.Equal(t, "scoring-target", result.Entry.ID)
			assert.InDelta(t, tt.expectedScore, result.Score, 1e-9)
			assert.InDelta(t, tt.expectedConfidence, result.Confidence, 1e-9)
		})
	}
}

func TestMatch_ConfidenceIsCappedAtOne(t *testing.T) {
	entries := []kb.Entry{
		{
			ID:       "many-keywords",
			Question: "irrelevant",
			Keywords: []string{"one", "two", "three", "four", "five", "six"},
		},
	}

	result := Match("one two three four five six", entries)

	require.NotNil(t, result)
	assert.InDelta(t, 12.0, result.Score, 1e-9)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestMatch_PicksBestEntry(t *testing.T) {
	result := Match("what if ice agents knock on my door", matcherEntries())

	require.NotNil(t, result)
	assert.Equal(t, "ice-at-door", result.Entry.ID)
	assert.True(t, result.Confidence > 0)
	assert.True(t, result.Confidence <= 1.0)
}

func TestMatch_TieKeepsFirstEntryInTableOrder(t *testing.T) {
	entries := []kb.Entry{
		{ID: "first", Question: "x", Keywords: []string{"warrant"}},
		{ID: "second", Question: "y", Keywords: []string{"warrant"}},
	}

	result := Match("warrant", entries)

	require.NotNil(t, result)
	assert.Equal(t, "first", result.Entry.ID)
}

func TestMatch_IsDeterministic(t *testing.T) {
	entries := matcherEntries()

	first := Match("do i have to answer questions from police", entries)
	require.NotNil(t, first)

	for i := 0; i < 10; i++ {
		again := Match("do i have to answer questions from police", entries)
		require.NotNil(t, again)
		assert.Equal(t, first.Entry.ID, again.Entry.ID)
		assert.Equal(t, first.Score, again.Score)
		assert.Equal(t, first.Confidence, again.Confidence)
	}
}

func TestMatch_CaseAndWhitespaceInsensitive(t *testing.T) {
	entries := matcherEntries()

	lower := Match("can i ask for a lawyer", entries)
	shouty := Match("  CAN I ASK FOR A LAWYER  ", entries)

	require.NotNil(t, lower)
	require.NotNil(t, shouty)
	assert.Equal(t, lower.Entry.ID, shouty.Entry.ID)
	assert.Equal(t, lower.Score, shouty.Score)
}

func TestMatch_MoreKeywordsNeverLowersScore(t *testing.T) {
	entries := []kb.Entry{
		{ID: "target", Question: "unrelated", Keywords: []string{"alpha", "beta", "gamma"}},
	}

	one := Match("alpha", entries)
	two := Match("alpha beta", entries)
	three := Match("alpha beta gamma", entries)

	require.NotNil(t, one)
	require.NotNil(t, two)
	require.NotNil(t, three)
	assert.Less(t, one.Score, two.Score)
	assert.Less(t, two.Score, three.Score)
}
