package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	AudioCacheKey(language string, text string) string
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// AudioCacheKey derives a stable cache key for synthesized audio from the
// language and the exact text that was spoken.
func (u *utils) AudioCacheKey(language string, text string) string {
	sum := sha256.Sum256([]byte(language + "|" + text))
	return "tts:" + hex.EncodeToString(sum[:])
}
