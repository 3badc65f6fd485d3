package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PoderBackend/pkg/kb"
)

func newChatCompletionServer(t *testing.T, content string, capture *map[string]interface{}) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)

		if capture != nil {
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			*capture = body
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"choices": []map[string]interface{}{
				{
					"index": 0,
					"message": map[string]interface{}{
						"role":    "assistant",
						"content": content,
					},
					"finish_reason": "stop",
				},
			},
		})
	}))
}

func TestNew_RequiresAPIKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	_, err := New()

	assert.Error(t, err)
}

func TestGenerateAnswer(t *testing.T) {
	var captured map[string]interface{}
	server := newChatCompletionServer(t, "You have the right to remain silent.", &captured)
	defer server.Close()

	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GROQ_BASE_URL", server.URL)

	client, err := New()
	require.NoError(t, err)

	answer, err := client.GenerateAnswer(context.Background(), "do I have to talk to police?", kb.LanguageEnglish)

	require.NoError(t, err)
	assert.Equal(t, "You have the right to remain silent.", answer)

	assert.Equal(t, "llama-3.3-70b-versatile", captured["model"])
	assert.EqualValues(t, 150, captured["max_tokens"])

	messages, ok := captured["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 2)

	system := messages[0].(map[string]interface{})
	assert.Equal(t, "system", system["role"])
	assert.Contains(t, system["content"], "Poder")
}

func TestGenerateAnswer_SpanishSystemPrompt(t *testing.T) {
	var captured map[string]interface{}
	server := newChatCompletionServer(t, "Tienes derecho a guardar silencio.", &captured)
	defer server.Close()

	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GROQ_BASE_URL", server.URL)

	client, err := New()
	require.NoError(t, err)

	_, err = client.GenerateAnswer(context.Background(), "¿tengo que hablar con la policía?", kb.LanguageSpanish)
	require.NoError(t, err)

	messages := captured["messages"].([]interface{})
	system := messages[0].(map[string]interface{})
	assert.Equal(t, systemPrompts[kb.LanguageSpanish], system["content"])
}

func TestGenerateAnswer_UnsupportedLanguage(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")

	client, err := New()
	require.NoError(t, err)

	_, err = client.GenerateAnswer(context.Background(), "hello", kb.Language("fr"))

	assert.ErrorIs(t, err, kb.ErrUnsupportedLanguage)
}

func TestGenerateAnswer_EmptyResponse(t *testing.T) {
	server := newChatCompletionServer(t, "", nil)
	defer server.Close()

	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GROQ_BASE_URL", server.URL)

	client, err := New()
	require.NoError(t, err)

	_, err = client.GenerateAnswer(context.Background(), "hello", kb.LanguageEnglish)

	assert.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	server := newChatCompletionServer(t, "Hello!", nil)
	defer server.Close()

	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GROQ_BASE_URL", server.URL)

	client, err := New()
	require.NoError(t, err)

	assert.NoError(t, client.HealthCheck(context.Background()))
}
