package assistant

import (
	"time"
)

const (
	SourceFAQ      = "faq"
	SourceAgent    = "agent"
	SourceFallback = "fallback"
)

type AskRequest struct {
	Text     string `json:"text" validate:"required,min=1,max=500"`
	Language string `json:"language" validate:"required,oneof=en es"`
}

// ResolvedAnswer is the terminal outcome of a resolution: display text plus a
// playable audio handle. Source tells whether it came from the static FAQ,
// the dynamic generation path or a canned fallback.
type ResolvedAnswer struct {
	ID               string   `json:"id"`
	Question         string   `json:"question"`
	Answer           string   `json:"answer"`
	AudioURL         string   `json:"audio_url,omitempty"`
	Source           string   `json:"source"`
	Confidence       float64  `json:"confidence,omitempty"`
	Category         string   `json:"category,omitempty"`
	RelatedScenarios []string `json:"related_scenarios,omitempty"`
	RelatedCards     []string `json:"related_cards,omitempty"`
}

type SuggestionsResponse struct {
	Term        string           `json:"term"`
	Language    string           `json:"language"`
	Suggestions []ResolvedAnswer `json:"suggestions"`
}

type QuestionsResponse struct {
	Language  string           `json:"language"`
	Category  string           `json:"category,omitempty"`
	Questions []ResolvedAnswer `json:"questions"`
}

type CategoriesResponse struct {
	Language   string   `json:"language"`
	Categories []string `json:"categories"`
}

type HistoryEntry struct {
	ID         string    `json:"id"`
	Query      string    `json:"query"`
	Language   string    `json:"language"`
	Intent     string    `json:"intent"`
	Source     string    `json:"source"`
	Confidence float64   `json:"confidence"`
	Answer     string    `json:"answer"`
	LatencyMs  int64     `json:"latency_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}
