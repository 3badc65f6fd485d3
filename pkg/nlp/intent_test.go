package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"PoderBackend/pkg/kb"
)

func TestClassify_English(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected Intent
	}{
		{"plain hello", "hello", IntentGreeting},
		{"hi with punctuation", "Hi!", IntentGreeting},
		{"greeting phrase", "good morning", IntentGreeting},
		{"greeting wins over trailing question", "hey, quick question about ICE", IntentGreeting},
		{"hi does not fire inside other words", "this house was searched", IntentLegalQuestion},
		{"bare help", "help", IntentHelpRequest},
		{"help phrase", "what can you do", IntentHelpRequest},
		{"help me phrase", "can you help me please", IntentHelpRequest},
		{"thanks", "thanks", IntentConversation},
		{"thank you phrase", "thank you so much", IntentConversation},
		{"who are you", "who are you?", IntentConversation},
		{"goodbye", "bye", IntentConversation},
		{"legal question default", "what are my rights if ICE comes to my door", IntentLegalQuestion},
		{"empty query", "", IntentLegalQuestion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.query, kb.LanguageEnglish))
		})
	}
}

func TestClassify_Spanish(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected Intent
	}{
		{"hola", "hola", IntentGreeting},
		{"hola with inverted punctuation", "¡Hola!", IntentGreeting},
		{"buenos dias with accent", "buenos días", IntentGreeting},
		{"buenos dias without accent", "buenos dias", IntentGreeting},
		{"ayuda", "ayuda", IntentHelpRequest},
		{"que puedes hacer", "¿qué puedes hacer?", IntentHelpRequest},
		{"gracias", "gracias", IntentConversation},
		{"quien eres", "¿quién eres?", IntentConversation},
		{"legal question default", "cuáles son mis derechos con la policía", IntentLegalQuestion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.query, kb.LanguageSpanish))
		})
	}
}

func TestClassify_UnknownLanguageDefaultsToLegalQuestion(t *testing.T) {
	assert.Equal(t, IntentLegalQuestion, Classify("hello", kb.Language("fr")))
}

func TestClassify_RuleOrderGreetingBeforeHelp(t *testing.T) {
	// A query matching both rule sets takes the first one checked.
	assert.Equal(t, IntentGreeting, Classify("hi, can you help me", kb.LanguageEnglish))
}

func TestIntent_Conversational(t *testing.T) {
	assert.True(t, IntentGreeting.Conversational())
	assert.True(t, IntentHelpRequest.Conversational())
	assert.True(t, IntentConversation.Conversational())
	assert.False(t, IntentLegalQuestion.Conversational())
}
