package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sanjaykbiswas/trivia-app-sub001/internal/domain"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/llmtext"

	"go.uber.org/zap"
)

const (
	defaultAnswerBatchSize = 50
	incorrectAnswerCount   = 3
)

// AnswerGenerator generates a correct answer and distractors for each
// question. Questions are processed in fixed-size batches; a failed batch
// leaves nil entries for its questions while sibling batches proceed.
type AnswerGenerator interface {
	// Generate returns a slice aligned index-for-index with questions.
	// An entry is nil when no usable answer was recovered for that question.
	Generate(ctx context.Context, questions []*domain.Question) []*domain.Answer
}

type answerGenerator struct {
	gateway   domain.TextGenerator
	decoder   *llmtext.Decoder
	batchSize int
	logger    *zap.Logger
}

// NewAnswerGenerator creates a new instance of answerGenerator. A
// non-positive batchSize falls back to the default of 50.
func NewAnswerGenerator(gateway domain.TextGenerator, decoder *llmtext.Decoder, batchSize int, logger *zap.Logger) AnswerGenerator {
	if batchSize <= 0 {
		batchSize = defaultAnswerBatchSize
	}
	return &answerGenerator{
		gateway:   gateway,
		decoder:   decoder,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Generate aligns recovered answers with questions positionally: the i-th
// element of a batch's decoded array answers the i-th question of that batch.
// Surplus elements are dropped, a short array leaves the tail unanswered, and
// a malformed element leaves only its own position unanswered.
func (g *answerGenerator) Generate(ctx context.Context, questions []*domain.Question) []*domain.Answer {
	answers := make([]*domain.Answer, len(questions))

	for start := 0; start < len(questions); start += g.batchSize {
		end := start + g.batchSize
		if end > len(questions) {
			end = len(questions)
		}
		batch := questions[start:end]

		raw := g.gateway.CompleteArray(ctx, answerPrompt(batch))
		items := g.decoder.DecodeList(raw)
		if len(items) == 0 {
			g.logger.Warn("answer batch produced no usable rows",
				zap.Int("batch_start", start),
				zap.Int("batch_size", len(batch)))
			continue
		}

		recovered := 0
		for i := range batch {
			if i >= len(items) {
				break
			}
			records := llmtext.AnswerRecords(items[i : i+1])
			if len(records) == 0 {
				continue
			}
			record := records[0]
			answer := domain.NewAnswer(record.CorrectAnswer, normalizeIncorrect(record.IncorrectAnswers))
			if err := answer.Validate(); err != nil {
				continue
			}
			answers[start+i] = answer
			recovered++
		}

		if recovered < len(batch) {
			g.logger.Info("answer batch under-delivered",
				zap.Int("batch_start", start),
				zap.Int("expected", len(batch)),
				zap.Int("recovered", recovered))
		}
	}
	return answers
}

// normalizeIncorrect trims each distractor and caps the list at three. A
// short list is kept as-is; validation only requires one.
func normalizeIncorrect(incorrect []string) []string {
	out := make([]string, 0, incorrectAnswerCount)
	for _, answer := range incorrect {
		trimmed := strings.TrimSpace(answer)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
		if len(out) == incorrectAnswerCount {
			break
		}
	}
	return out
}

func answerPrompt(questions []*domain.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Provide answers for the following %d trivia questions.\n\n", len(questions))
	for i, question := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, question.Content)
	}
	b.WriteString(`
For each question, in the same order, provide the correct answer and exactly 3 plausible incorrect answers.

Respond with a JSON array only, where the i-th element answers the i-th question and has the shape {"correct_answer": "...", "incorrect_answers": ["...", "...", "..."]}.`)
	return b.String()
}
