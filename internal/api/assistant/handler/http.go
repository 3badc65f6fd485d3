package assistantHandler

import (
	assistantService "PoderBackend/internal/api/assistant/service"
	"PoderBackend/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AssistantHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	assistantService assistantService.IAssistantService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as assistantService.IAssistantService,
) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		assistantService: as,
	}
}

func (h *AssistantHandler) Start(srv fiber.Router) {
	assistant := srv.Group("/assistant")

	// The dynamic path bills two external APIs per miss, so asks are
	// rate limited while read-only browsing stays open.
	assistant.Post("/ask", h.middleware.NewRateLimiter, h.AskQuestion)

	// Knowledge base browsing
	assistant.Get("/suggestions", h.GetSuggestions)
	assistant.Get("/questions", h.GetQuestions)
	assistant.Get("/questions/random", h.GetRandomQuestion)
	assistant.Get("/categories", h.GetCategories)

	// History and diagnostics
	assistant.Get("/history", h.GetHistory)
	assistant.Get("/health", h.GetHealth)

	// Pre-rendered FAQ audio serving
	srv.Get("/audio/:language/:filename", h.ServeAudioFile)
}
