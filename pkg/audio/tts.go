package audio

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"PoderBackend/pkg/kb"
)

type ITTS interface {
	Synthesize(ctx context.Context, text string, language kb.Language) ([]byte, error)
	HealthCheck() error
}

type ttsService struct {
	apiKey     string
	voiceIDs   map[kb.Language]string
	httpClient *http.Client
}

func NewTTSService() ITTS {
	return &ttsService{
		apiKey: os.Getenv("ELEVENLABS_API_KEY"),
		voiceIDs: map[kb.Language]string{
			kb.LanguageEnglish: os.Getenv("ELEVENLABS_VOICE_ID_EN"),
			kb.LanguageSpanish: os.Getenv("ELEVENLABS_VOICE_ID_ES"),
		},
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Synthesize renders text to MP3 bytes with the language's configured voice.
func (tts *ttsService) Synthesize(ctx context.Context, text string, language kb.Language) ([]byte, error) {
	if tts.apiKey == "" {
		return nil, errors.New("elevenlabs API key is not configured")
	}
	voiceID := tts.voiceIDs[language]
	if voiceID == "" {
		return nil, fmt.Errorf("voice ID not configured for language: %s", language)
	}

	url := "https://api.elevenlabs.io/v1/text-to-speech/" + voiceID

	requestBody := map[string]interface{}{
		"text":     text,
		"model_id": "eleven_multilingual_v2",
		"voice_settings": map[string]interface{}{
			"stability":        0.7,
			"similarity_boost": 0.8,
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", tts.apiKey)

	resp, err := tts.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ElevenLabs API error: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// HealthCheck verifies the key and both voice IDs are configured. It does not
// spend credits on a synthesis call.
func (tts *ttsService) HealthCheck() error {
	if tts.apiKey == "" {
		return errors.New("elevenlabs API key is not configured")
	}
	for _, language := range []kb.Language{kb.LanguageEnglish, kb.LanguageSpanish} {
		if tts.voiceIDs[language] == "" {
			return fmt.Errorf("voice ID not configured for language: %s", language)
		}
	}
	return nil
}

// DataURL embeds synthesized audio directly in a response so playback needs
// no second round trip.
func DataURL(audioData []byte) string {
	return "data:audio/mpeg;base64," + base64.StdEncoding.EncodeToString(audioData)
}
