package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/sanjaykbiswas/trivia-app-sub001/internal/domain"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/llmtext"

	"go.uber.org/zap"
)

// QuestionGenerator generates trivia questions for a category at one
// difficulty tier. The provider may deliver fewer questions than requested;
// the shortfall is passed through silently. Over-delivery is truncated to the
// requested count.
type QuestionGenerator interface {
	Generate(ctx context.Context, category string, count int, difficulty domain.Difficulty) ([]*domain.Question, error)
}

type questionGenerator struct {
	gateway    domain.TextGenerator
	guidelines GuidelineService
	decoder    *llmtext.Decoder
	logger     *zap.Logger
}

// NewQuestionGenerator creates a new instance of questionGenerator.
func NewQuestionGenerator(
	gateway domain.TextGenerator,
	guidelines GuidelineService,
	decoder *llmtext.Decoder,
	logger *zap.Logger,
) QuestionGenerator {
	return &questionGenerator{
		gateway:    gateway,
		guidelines: guidelines,
		decoder:    decoder,
		logger:     logger,
	}
}

// Generate fetches the category guidelines and the tier description
// concurrently, builds one prompt from both, and recovers question rows from
// the completion. Malformed rows are dropped; the result is at most count
// questions, possibly fewer, never an error once the inputs validate.
func (g *questionGenerator) Generate(ctx context.Context, category string, count int, difficulty domain.Difficulty) ([]*domain.Question, error) {
	if category == "" {
		return nil, domain.NewInvalidCategoryError(category)
	}
	if count <= 0 {
		return nil, domain.NewValidationError("count", "count must be positive")
	}
	if !difficulty.Valid() {
		difficulty = domain.ParseDifficulty(string(difficulty))
	}

	var (
		wg          sync.WaitGroup
		guidelines  string
		tierContext string
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		guidelines = g.guidelines.GetCategoryGuidelines(ctx, category)
	}()
	go func() {
		defer wg.Done()
		tierContext = g.guidelines.GetDifficultyContext(ctx, category, difficulty)
	}()
	wg.Wait()

	prompt := questionPrompt(category, count, difficulty, guidelines, tierContext)
	raw := g.gateway.CompleteArray(ctx, prompt)
	records := llmtext.QuestionRecords(g.decoder.DecodeList(raw))

	questions := make([]*domain.Question, 0, count)
	for _, record := range records {
		question := domain.NewQuestion(record.Content, category, difficulty)
		if err := question.Validate(); err != nil {
			continue
		}
		questions = append(questions, question)
		if len(questions) == count {
			break
		}
	}

	if len(questions) < count {
		g.logger.Info("question generation under-delivered",
			zap.String("category", category),
			zap.String("difficulty", string(difficulty)),
			zap.Int("requested", count),
			zap.Int("delivered", len(questions)))
	}
	return questions, nil
}

func questionPrompt(category string, count int, difficulty domain.Difficulty, guidelines, tierContext string) string {
	return fmt.Sprintf(`Generate %d %s trivia questions at the %s difficulty tier.

Category guidelines:
%s

Difficulty expectations:
%s

Rules:
- No duplicate or near-duplicate questions.
- No true/false questions.
- No fill-in-the-blank questions.
- Each question is at most 120 characters and 20 words.
- Neutral, factual tone; each question has a single unambiguous answer.

Respond with a JSON array only, where each element is {"question": "..."}.`,
		count, category, difficulty, guidelines, tierContext)
}
