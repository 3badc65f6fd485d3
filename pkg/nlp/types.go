package nlp

import "PoderBackend/pkg/kb"

// ConfidenceThreshold is the boundary between trusting a static FAQ match and
// paying for dynamic generation. A match at exactly this value is trusted.
const ConfidenceThreshold = 0.7

type Intent string

const (
	IntentGreeting      Intent = "greeting"
	IntentHelpRequest   Intent = "help_request"
	IntentConversation  Intent = "conversation"
	IntentLegalQuestion Intent = "legal_question"
)

// Conversational reports whether an intent should skip FAQ matching and go
// straight to the dynamic generation path.
func (i Intent) Conversational() bool {
	return i == IntentGreeting || i == IntentHelpRequest || i == IntentConversation
}

// MatchResult is the ephemeral outcome of scoring one query against a
// knowledge-base table. Discarded after the resolver consumes it.
type MatchResult struct {
	Entry      kb.Entry `json:"entry"`
	Score      float64  `json:"score"`
	Confidence float64  `json:"confidence"`
}
