package handler

import (
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/domain"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/dto"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/logger"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TriviaHandler handles trivia generation HTTP requests
type TriviaHandler struct {
	service service.TriviaService
}

// NewTriviaHandler creates a new TriviaHandler instance
func NewTriviaHandler(service service.TriviaService) *TriviaHandler {
	return &TriviaHandler{
		service: service,
	}
}

// GenerateQuestions godoc
// @Summary Generate trivia questions
// @Description Generates questions for a category at one difficulty tier without persisting them
// @Tags trivia
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionsRequest true "Generation Request"
// @Success 200 {object} dto.QuestionsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /trivia/questions [post]
func (h *TriviaHandler) GenerateQuestions(c *fiber.Ctx) error {
	req := c.Locals("generate_request").(dto.GenerateQuestionsRequest)
	difficulty := domain.ParseDifficulty(req.Difficulty)

	questions, err := h.service.GenerateQuestions(c.Context(), req.Category, req.Count, difficulty, req.Dedupe)
	if err != nil {
		logger.Get().Error("Failed to generate questions",
			zap.Error(err),
			zap.String("category", req.Category),
			zap.String("difficulty", string(difficulty)),
		)
		return err
	}

	return c.JSON(dto.ToQuestionsResponse(questions))
}

// GenerateTriviaSet godoc
// @Summary Generate and persist a complete question set
// @Description Runs the full pipeline for one difficulty tier: questions, optional deduplication, answers, persistence
// @Tags trivia
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionsRequest true "Generation Request"
// @Success 200 {object} dto.TriviaSetResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /trivia/sets [post]
func (h *TriviaHandler) GenerateTriviaSet(c *fiber.Ctx) error {
	req := c.Locals("generate_request").(dto.GenerateQuestionsRequest)
	difficulty := domain.ParseDifficulty(req.Difficulty)

	set, err := h.service.GenerateCompleteQuestionSet(c.Context(), req.Category, req.Count, difficulty, req.Dedupe)
	if err != nil {
		logger.Get().Error("Failed to generate trivia set",
			zap.Error(err),
			zap.String("category", req.Category),
			zap.String("difficulty", string(difficulty)),
		)
		return err
	}

	return c.JSON(dto.ToTriviaSetResponse(set))
}

// GenerateMultiDifficultySet godoc
// @Summary Generate complete question sets across difficulty tiers
// @Description Runs the pipeline concurrently per requested tier; a failed tier yields an empty list
// @Tags trivia
// @Accept json
// @Produce json
// @Param request body dto.MultiDifficultyRequest true "Multi Difficulty Request"
// @Success 200 {object} dto.MultiDifficultyResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /trivia/sets/multi [post]
func (h *TriviaHandler) GenerateMultiDifficultySet(c *fiber.Ctx) error {
	req := c.Locals("multi_difficulty_request").(dto.MultiDifficultyRequest)

	counts := make(map[domain.Difficulty]int, len(req.Counts))
	for tier, count := range req.Counts {
		counts[domain.ParseDifficulty(tier)] += count
	}

	sets, err := h.service.GenerateMultiDifficultySet(c.Context(), req.Category, counts, req.Dedupe)
	if err != nil {
		logger.Get().Error("Failed to generate multi-difficulty set",
			zap.Error(err),
			zap.String("category", req.Category),
		)
		return err
	}

	return c.JSON(dto.ToMultiDifficultyResponse(sets))
}
