package entity

import (
	"time"
)

// QueryRecord is one resolved question, persisted best-effort for usage
// analysis. It never carries user identity.
type QueryRecord struct {
	ID             string    `db:"id" json:"id"`
	Query          string    `db:"query" json:"query"`
	Language       string    `db:"language" json:"language"`
	Intent         string    `db:"intent" json:"intent"`
	Source         string    `db:"source" json:"source"`
	MatchedEntryID string    `db:"matched_entry_id" json:"matched_entry_id,omitempty"`
	Confidence     float64   `db:"confidence" json:"confidence"`
	Answer         string    `db:"answer" json:"answer"`
	LatencyMs      int64     `db:"latency_ms" json:"latency_ms"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
