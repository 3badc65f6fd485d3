package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	id, err := u.NewULIDFromTimestamp(time.Now())

	require.NoError(t, err)
	assert.Len(t, id, 26)

	other, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestAudioCacheKey(t *testing.T) {
	u := New()

	key := u.AudioCacheKey("en", "you have the right to remain silent")

	assert.True(t, len(key) > len("tts:"))
	assert.Equal(t, "tts:", key[:4])

	// stable for the same input
	assert.Equal(t, key, u.AudioCacheKey("en", "you have the right to remain silent"))

	// language is part of the key, so the same text in another language
	// resolves to different cached audio
	assert.NotEqual(t, key, u.AudioCacheKey("es", "you have the right to remain silent"))
	assert.NotEqual(t, key, u.AudioCacheKey("en", "different text"))
}
