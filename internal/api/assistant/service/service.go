package assistantService

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"PoderBackend/internal/api/assistant"
	assistantRepository "PoderBackend/internal/api/assistant/repository"
	"PoderBackend/pkg/audio"
	"PoderBackend/pkg/groq"
	"PoderBackend/pkg/kb"
	redisPkg "PoderBackend/pkg/redis"
	"PoderBackend/pkg/utils"
)

type IAssistantService interface {
	ResolveQuestion(ctx context.Context, req assistant.AskRequest) (*assistant.ResolvedAnswer, error)

	SearchQuestions(ctx context.Context, term, language string, limit int) (*assistant.SuggestionsResponse, error)
	GetQuestions(ctx context.Context, language, category string) (*assistant.QuestionsResponse, error)
	GetRandomQuestion(ctx context.Context, language string) (*assistant.ResolvedAnswer, error)
	GetCategories(ctx context.Context, language string) (*assistant.CategoriesResponse, error)

	GetHistory(ctx context.Context, page, limit int) ([]assistant.HistoryEntry, int, error)
	ServeAudioFile(ctx context.Context, language, filename string) ([]byte, error)
	GetHealth(ctx context.Context) *assistant.HealthResponse
}

type assistantService struct {
	log         *logrus.Logger
	knowledge   kb.IKnowledgeBase
	queryRepo   assistantRepository.Repository
	generator   groq.IGroq
	synthesizer audio.ITTS
	audioCache  redisPkg.IRedis
	utils       utils.IUtils
	audioDir    string
}

func NewAssistantService(
	log *logrus.Logger,
	knowledge kb.IKnowledgeBase,
	queryRepo assistantRepository.Repository,
	generator groq.IGroq,
	synthesizer audio.ITTS,
	audioCache redisPkg.IRedis,
	utils utils.IUtils,
) IAssistantService {
	audioDir := os.Getenv("AUDIO_STORAGE_PATH")
	if audioDir == "" {
		audioDir = "./storage/audio"
	}

	return &assistantService{
		log:         log,
		knowledge:   knowledge,
		queryRepo:   queryRepo,
		generator:   generator,
		synthesizer: synthesizer,
		audioCache:  audioCache,
		utils:       utils,
		audioDir:    audioDir,
	}
}

func parseLanguage(language string) (kb.Language, error) {
	switch kb.Language(language) {
	case kb.LanguageEnglish:
		return kb.LanguageEnglish, nil
	case kb.LanguageSpanish:
		return kb.LanguageSpanish, nil
	default:
		return "", kb.ErrUnsupportedLanguage
	}
}
