package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name      string
		apiKey    string
		voiceEN   string
		voiceES   string
		expectErr bool
	}{
		{"fully configured", "key", "voice-en", "voice-es", false},
		{"missing api key", "", "voice-en", "voice-es", true},
		{"missing english voice", "key", "", "voice-es", true},
		{"missing spanish voice", "key", "voice-en", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ELEVENLABS_API_KEY", tt.apiKey)
			t.Setenv("ELEVENLABS_VOICE_ID_EN", tt.voiceEN)
			t.Setenv("ELEVENLABS_VOICE_ID_ES", tt.voiceES)

			err := NewTTSService().HealthCheck()

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDataURL(t *testing.T) {
	url := DataURL([]byte("mp3"))

	assert.Equal(t, "data:audio/mpeg;base64,bXAz", url)
}

func TestDataURL_Empty(t *testing.T) {
	assert.Equal(t, "data:audio/mpeg;base64,", DataURL(nil))
}
