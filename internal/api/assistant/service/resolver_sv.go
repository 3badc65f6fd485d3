package assistantService

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"PoderBackend/internal/api/assistant"
	"PoderBackend/internal/entity"
	"PoderBackend/pkg/audio"
	contextPkg "PoderBackend/pkg/context"
	"PoderBackend/pkg/kb"
	"PoderBackend/pkg/nlp"
)

const audioCacheTTL = 24 * time.Hour

// Canned responses used when the dynamic path fails. A greeting must never
// surface a technical error, so it gets the assistant's normal introduction.
var greetingFallbacks = map[kb.Language]string{
	kb.LanguageEnglish: "Hi! I'm Poder. I help people understand their legal rights with ICE, police, and workplace issues. What's your situation?",
	kb.LanguageSpanish: "¡Hola! Soy Poder. Te ayudo a entender tus derechos legales con ICE, policía, y trabajo. ¿En qué situación necesitas ayuda?",
}

var unavailableFallbacks = map[kb.Language]string{
	kb.LanguageEnglish: "Sorry, I'm having trouble answering right now. Try one of the suggested questions below.",
	kb.LanguageSpanish: "Lo siento, estoy teniendo problemas para responder en este momento. Intenta con una de las preguntas sugeridas abajo.",
}

var noAnswerFallbacks = map[kb.Language]string{
	kb.LanguageEnglish: "I didn't catch that specific question. Try asking common questions listed below.",
	kb.LanguageSpanish: "No entendí esa pregunta específica. Intenta con las preguntas comunes abajo.",
}

// ResolveQuestion runs the tiered resolution pipeline: classify the intent,
// trust a confident FAQ match, otherwise generate text and speech remotely,
// and degrade to a canned or low-confidence answer when the remote path
// fails. The resolver holds no state across calls.
func (s *assistantService) ResolveQuestion(ctx context.Context, req assistant.AskRequest) (*assistant.ResolvedAnswer, error) {
	requestID := contextPkg.GetRequestID(ctx)
	start := time.Now()

	language, err := parseLanguage(req.Language)
	if err != nil {
		return nil, assistant.ErrUnsupportedLanguage
	}

	entries, err := s.knowledge.AllEntries(language)
	if err != nil {
		return nil, assistant.ErrUnsupportedLanguage
	}

	intent := nlp.Classify(req.Text, language)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"intent":     intent,
		"language":   language,
	}).Debug("Classified question intent")

	// Legal questions try the static FAQ first. A match at or above the
	// threshold is the fast, free path.
	var match *nlp.MatchResult
	if intent == nlp.IntentLegalQuestion {
		match = nlp.Match(req.Text, entries)
		if match != nil && match.Confidence >= nlp.ConfidenceThreshold {
			answer := answerFromMatch(language, *match)
			s.recordQuery(ctx, req, intent, answer, start)
			return answer, nil
		}
	}

	answer, err := s.resolveDynamic(ctx, req.Text, language)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"intent":     intent,
			"error":      err.Error(),
		}).Warn("Dynamic path failed, using fallback")
		answer = s.fallbackAnswer(language, intent, match, req.Text)
	}

	s.recordQuery(ctx, req, intent, answer, start)
	return answer, nil
}

// resolveDynamic generates fresh answer text, then synthesizes speech for it.
// The two remote calls are sequential; a failure at either step fails the
// whole path and the caller decides the fallback.
func (s *assistantService) resolveDynamic(ctx context.Context, question string, language kb.Language) (*assistant.ResolvedAnswer, error) {
	text, err := s.generator.GenerateAnswer(ctx, question, language)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", assistant.ErrGenerationFailed, err)
	}

	audioURL, err := s.audioForText(ctx, text, language)
	if err != nil {
		return nil, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return nil, err
	}

	return &assistant.ResolvedAnswer{
		ID:       "dynamic-" + id,
		Question: question,
		Answer:   text,
		AudioURL: audioURL,
		Source:   assistant.SourceAgent,
	}, nil
}

// audioForText returns a playable data URL for the given text, consulting the
// audio cache before billing the synthesis service. Cache failures are not
// fatal; synthesis failures are.
func (s *assistantService) audioForText(ctx context.Context, text string, language kb.Language) (string, error) {
	cacheKey := s.utils.AudioCacheKey(string(language), text)

	if s.audioCache != nil {
		if cached, err := s.audioCache.GetAudio(ctx, cacheKey); err == nil {
			return audio.DataURL(cached), nil
		}
	}

	audioData, err := s.synthesizer.Synthesize(ctx, text, language)
	if err != nil {
		return "", fmt.Errorf("%w: %v", assistant.ErrSynthesisFailed, err)
	}

	if s.audioCache != nil {
		if err := s.audioCache.SetAudio(ctx, cacheKey, audioData, audioCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Warn("Failed to cache synthesized audio")
		}
	}

	return audio.DataURL(audioData), nil
}

func (s *assistantService) fallbackAnswer(language kb.Language, intent nlp.Intent, match *nlp.MatchResult, question string) *assistant.ResolvedAnswer {
	switch {
	case intent == nlp.IntentGreeting:
		return &assistant.ResolvedAnswer{
			ID:       "fallback-greeting",
			Question: question,
			Answer:   greetingFallbacks[language],
			Source:   assistant.SourceFallback,
		}
	case intent.Conversational():
		return &assistant.ResolvedAnswer{
			ID:       "fallback-unavailable",
			Question: question,
			Answer:   unavailableFallbacks[language],
			Source:   assistant.SourceFallback,
		}
	case match != nil:
		// a low-confidence FAQ guess beats no answer
		return answerFromMatch(language, *match)
	default:
		return &assistant.ResolvedAnswer{
			ID:       "fallback-no-answer",
			Question: question,
			Answer:   noAnswerFallbacks[language],
			Source:   assistant.SourceFallback,
		}
	}
}

func answerFromMatch(language kb.Language, match nlp.MatchResult) *assistant.ResolvedAnswer {
	entry := match.Entry
	return &assistant.ResolvedAnswer{
		ID:               entry.ID,
		Question:         entry.Question,
		Answer:           entry.Answer,
		AudioURL:         kb.AudioURL(language, entry),
		Source:           assistant.SourceFAQ,
		Confidence:       match.Confidence,
		Category:         entry.Category,
		RelatedScenarios: entry.RelatedScenarios,
		RelatedCards:     entry.RelatedCards,
	}
}

// recordQuery persists the resolution for usage analysis. Best-effort: a
// storage failure is logged and never fails the resolution.
func (s *assistantService) recordQuery(ctx context.Context, req assistant.AskRequest, intent nlp.Intent, answer *assistant.ResolvedAnswer, start time.Time) {
	if s.queryRepo == nil {
		return
	}

	repo, err := s.queryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{"error": err.Error()}).Warn("Failed to create repository client for query record")
		return
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{"error": err.Error()}).Warn("Failed to generate query record ID")
		return
	}

	matchedEntryID := ""
	if answer.Source == assistant.SourceFAQ {
		matchedEntryID = answer.ID
	}

	record := entity.QueryRecord{
		ID:             id,
		Query:          req.Text,
		Language:       req.Language,
		Intent:         string(intent),
		Source:         answer.Source,
		MatchedEntryID: matchedEntryID,
		Confidence:     answer.Confidence,
		Answer:         answer.Answer,
		LatencyMs:      time.Since(start).Milliseconds(),
		CreatedAt:      time.Now(),
	}

	if err := repo.Queries.CreateQueryRecord(ctx, record); err != nil {
		s.log.WithFields(logrus.Fields{"error": err.Error()}).Warn("Failed to save query record")
	}
}
