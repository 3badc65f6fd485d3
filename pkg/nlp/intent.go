package nlp

import (
	"strings"

	"PoderBackend/pkg/kb"
)

// intentRules holds per-language pattern rules. Single words are matched
// against whole tokens (so "hi" never fires inside "this"); phrases are
// matched as substrings of the normalized query.
type intentRules struct {
	greetingWords       []string
	greetingPhrases     []string
	helpWords           []string
	helpPhrases         []string
	conversationWords   []string
	conversationPhrases []string
}

var rulesByLanguage = map[kb.Language]intentRules{
	kb.LanguageEnglish: {
		greetingWords:   []string{"hi", "hello", "hey", "greetings"},
		greetingPhrases: []string{"good morning", "good afternoon", "good evening"},
		helpWords:       []string{"help"},
		helpPhrases: []string{
			"what can you do", "help me", "what do you do", "how do you work",
		},
		conversationWords: []string{"thanks", "bye", "goodbye", "ok", "okay"},
		conversationPhrases: []string{
			"thank you", "how are you", "who are you",
		},
	},
	kb.LanguageSpanish: {
		greetingWords:   []string{"hola", "buenas", "saludos"},
		greetingPhrases: []string{"buenos dias", "buenos días", "buenas tardes", "buenas noches", "que tal", "qué tal"},
		helpWords:       []string{"ayuda"},
		helpPhrases: []string{
			"que puedes hacer", "qué puedes hacer", "ayudame", "ayúdame",
			"como funcionas", "cómo funcionas",
		},
		conversationWords: []string{"gracias", "adios", "adiós"},
		conversationPhrases: []string{
			"como estas", "cómo estás", "quien eres", "quién eres",
		},
	},
}

// Classify labels a query as greeting, help request, chit-chat or (default)
// legal question. Rules are checked in that order; anything unmatched falls
// through to legal_question. Always returns a label, never fails.
func Classify(query string, language kb.Language) Intent {
	normalized := strings.ToLower(strings.TrimSpace(query))
	tokens := strings.Fields(normalized)

	rules, ok := rulesByLanguage[language]
	if !ok {
		return IntentLegalQuestion
	}

	if matchesAny(normalized, tokens, rules.greetingWords, rules.greetingPhrases) {
		return IntentGreeting
	}
	if matchesAny(normalized, tokens, rules.helpWords, rules.helpPhrases) {
		return IntentHelpRequest
	}
	if matchesAny(normalized, tokens, rules.conversationWords, rules.conversationPhrases) {
		return IntentConversation
	}

	return IntentLegalQuestion
}

func matchesAny(normalized string, tokens []string, words []string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	for _, word := range words {
		for _, token := range tokens {
			if strings.Trim(token, ".,!?¿¡") == word {
				return true
			}
		}
	}
	return false
}
