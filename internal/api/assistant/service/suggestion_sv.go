package assistantService

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"PoderBackend/internal/api/assistant"
	"PoderBackend/pkg/kb"
	"PoderBackend/pkg/nlp"
)

// SearchQuestions ranks knowledge-base entries for suggestion lists. Unlike
// ResolveQuestion there is no confidence gate: anything scoring above zero is
// returned, best first. An empty term yields an empty result set.
func (s *assistantService) SearchQuestions(ctx context.Context, term, language string, limit int) (*assistant.SuggestionsResponse, error) {
	lang, err := parseLanguage(language)
	if err != nil {
		return nil, assistant.ErrUnsupportedLanguage
	}

	entries, err := s.knowledge.AllEntries(lang)
	if err != nil {
		return nil, assistant.ErrUnsupportedLanguage
	}

	results := nlp.Search(term, entries, limit)

	suggestions := make([]assistant.ResolvedAnswer, 0, len(results))
	for _, result := range results {
		suggestions = append(suggestions, *answerFromMatch(lang, result))
	}

	return &assistant.SuggestionsResponse{
		Term:        term,
		Language:    language,
		Suggestions: suggestions,
	}, nil
}

func (s *assistantService) GetQuestions(ctx context.Context, language, category string) (*assistant.QuestionsResponse, error) {
	lang, err := parseLanguage(language)
	if err != nil {
		return nil, assistant.ErrUnsupportedLanguage
	}

	var entries []kb.Entry
	if category != "" {
		entries, err = s.knowledge.EntriesByCategory(lang, category)
	} else {
		entries, err = s.knowledge.AllEntries(lang)
	}
	if err != nil {
		return nil, assistant.ErrUnsupportedLanguage
	}

	questions := make([]assistant.ResolvedAnswer, 0, len(entries))
	for _, entry := range entries {
		questions = append(questions, *answerFromEntry(lang, entry))
	}

	return &assistant.QuestionsResponse{
		Language:  language,
		Category:  category,
		Questions: questions,
	}, nil
}

func (s *assistantService) GetRandomQuestion(ctx context.Context, language string) (*assistant.ResolvedAnswer, error) {
	lang, err := parseLanguage(language)
	if err != nil {
		return nil, assistant.ErrUnsupportedLanguage
	}

	entry, err := s.knowledge.RandomEntry(lang)
	if err != nil {
		return nil, assistant.ErrUnsupportedLanguage
	}

	return answerFromEntry(lang, entry), nil
}

func (s *assistantService) GetCategories(ctx context.Context, language string) (*assistant.CategoriesResponse, error) {
	lang, err := parseLanguage(language)
	if err != nil {
		return nil, assistant.ErrUnsupportedLanguage
	}

	categories, err := s.knowledge.Categories(lang)
	if err != nil {
		return nil, assistant.ErrUnsupportedLanguage
	}

	return &assistant.CategoriesResponse{
		Language:   language,
		Categories: categories,
	}, nil
}

func (s *assistantService) GetHistory(ctx context.Context, page, limit int) ([]assistant.HistoryEntry, int, error) {
	repo, err := s.queryRepo.NewClient(false)
	if err != nil {
		return nil, 0, assistant.ErrHistoryUnavailable
	}

	records, total, err := repo.Queries.GetQueryRecords(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, assistant.ErrHistoryUnavailable
	}

	history := make([]assistant.HistoryEntry, 0, len(records))
	for _, record := range records {
		history = append(history, assistant.HistoryEntry{
			ID:         record.ID,
			Query:      record.Query,
			Language:   record.Language,
			Intent:     record.Intent,
			Source:     record.Source,
			Confidence: record.Confidence,
			Answer:     record.Answer,
			LatencyMs:  record.LatencyMs,
			CreatedAt:  record.CreatedAt,
		})
	}

	return history, total, nil
}

// ServeAudioFile reads a pre-rendered FAQ audio asset from local storage.
func (s *assistantService) ServeAudioFile(ctx context.Context, language, filename string) ([]byte, error) {
	lang, err := parseLanguage(language)
	if err != nil {
		return nil, assistant.ErrUnsupportedLanguage
	}

	if strings.Contains(filename, "..") || strings.ContainsAny(filename, "/\\") {
		return nil, assistant.ErrInvalidAudioPath
	}

	data, err := os.ReadFile(filepath.Join(s.audioDir, string(lang), filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, assistant.ErrAudioNotFound
		}
		return nil, err
	}

	return data, nil
}

// GetHealth reports per-collaborator readiness so operators can tell a
// misconfigured service from a transient remote failure.
func (s *assistantService) GetHealth(ctx context.Context) *assistant.HealthResponse {
	components := make(map[string]string)
	status := "ok"

	if s.generator == nil {
		components["generation"] = "not configured"
		status = "degraded"
	} else if err := s.generator.HealthCheck(ctx); err != nil {
		components["generation"] = err.Error()
		status = "degraded"
	} else {
		components["generation"] = "ok"
	}

	if s.synthesizer == nil {
		components["synthesis"] = "not configured"
		status = "degraded"
	} else if err := s.synthesizer.HealthCheck(); err != nil {
		components["synthesis"] = err.Error()
		status = "degraded"
	} else {
		components["synthesis"] = "ok"
	}

	for _, lang := range []kb.Language{kb.LanguageEnglish, kb.LanguageSpanish} {
		if entries, err := s.knowledge.AllEntries(lang); err != nil || len(entries) == 0 {
			components["knowledge_base"] = "missing table: " + string(lang)
			status = "degraded"
		}
	}
	if _, ok := components["knowledge_base"]; !ok {
		components["knowledge_base"] = "ok"
	}

	return &assistant.HealthResponse{
		Status:     status,
		Components: components,
	}
}

func answerFromEntry(language kb.Language, entry kb.Entry) *assistant.ResolvedAnswer {
	return &assistant.ResolvedAnswer{
		ID:               entry.ID,
		Question:         entry.Question,
		Answer:           entry.Answer,
		AudioURL:         kb.AudioURL(language, entry),
		Source:           assistant.SourceFAQ,
		Confidence:       1,
		Category:         entry.Category,
		RelatedScenarios: entry.RelatedScenarios,
		RelatedCards:     entry.RelatedCards,
	}
}
