package assistantRepository

const (
	queryCreateQueryRecord = `
		INSERT INTO query_records (
			id, query, language, intent, source,
			matched_entry_id, confidence, answer,
			latency_ms, created_at
		) VALUES (
			:id, :query, :language, :intent, :source,
			:matched_entry_id, :confidence, :answer,
			:latency_ms, :created_at
		)
	`

	queryGetQueryRecords = `
		SELECT
			id, query, language, intent, source,
			matched_entry_id, confidence, answer,
			latency_ms, created_at
		FROM query_records
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	queryCountQueryRecords = `
		SELECT COUNT(*)
		FROM query_records
	`
)
