package kb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledgeBase_AllEntries(t *testing.T) {
	knowledge := New()

	for _, language := range []Language{LanguageEnglish, LanguageSpanish} {
		t.Run(string(language), func(t *testing.T) {
			entries, err := knowledge.AllEntries(language)
			require.NoError(t, err)
			assert.Len(t, entries, 10)

			seen := make(map[string]bool)
			for _, entry := range entries {
				assert.False(t, seen[entry.ID], "duplicate entry ID: %s", entry.ID)
				seen[entry.ID] = true

				assert.NotEmpty(t, entry.Question, "entry %s has no question", entry.ID)
				assert.NotEmpty(t, entry.Keywords, "entry %s has no keywords", entry.ID)
				assert.NotEmpty(t, entry.Answer, "entry %s has no answer", entry.ID)
				assert.NotEmpty(t, entry.VoiceScript, "entry %s has no voice script", entry.ID)
				assert.NotEmpty(t, entry.AudioFile, "entry %s has no audio file", entry.ID)
				assert.NotEmpty(t, entry.Category, "entry %s has no category", entry.ID)
			}
		})
	}
}

func TestKnowledgeBase_UnsupportedLanguage(t *testing.T) {
	knowledge := New()

	_, err := knowledge.AllEntries(Language("fr"))
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	_, err = knowledge.EntriesByCategory(Language("fr"), "police")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	_, err = knowledge.RandomEntry(Language("fr"))
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	_, err = knowledge.Categories(Language("fr"))
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestKnowledgeBase_EntriesByCategory(t *testing.T) {
	knowledge := New()

	entries, err := knowledge.EntriesByCategory(LanguageEnglish, "police")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, entry := range entries {
		assert.Equal(t, "police", entry.Category)
	}

	entries, err = knowledge.EntriesByCategory(LanguageEnglish, "no-such-category")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestKnowledgeBase_Categories(t *testing.T) {
	knowledge := New()

	categories, err := knowledge.Categories(LanguageEnglish)
	require.NoError(t, err)
	assert.NotEmpty(t, categories)

	seen := make(map[string]bool)
	for _, category := range categories {
		assert.False(t, seen[category], "duplicate category: %s", category)
		seen[category] = true
	}
}

func TestKnowledgeBase_RandomEntryIsAMember(t *testing.T) {
	knowledge := New()

	entries, err := knowledge.AllEntries(LanguageSpanish)
	require.NoError(t, err)

	ids := make(map[string]bool, len(entries))
	for _, entry := range entries {
		ids[entry.ID] = true
	}

	for i := 0; i < 20; i++ {
		entry, err := knowledge.RandomEntry(LanguageSpanish)
		require.NoError(t, err)
		assert.True(t, ids[entry.ID], "random entry %s is not in the table", entry.ID)
	}
}

func TestAudioURL(t *testing.T) {
	entry := Entry{ID: "ice-at-door", AudioFile: "ice-at-door.mp3"}

	url := AudioURL(LanguageEnglish, entry)

	assert.Equal(t, "/api/v1/audio/en/ice-at-door.mp3", url)
	assert.True(t, strings.HasSuffix(url, entry.AudioFile))
}
