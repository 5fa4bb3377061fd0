package service

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sanjaykbiswas/trivia-app-sub001/internal/domain"

	"go.uber.org/zap"
)

// TriviaService is the facade over the generation pipeline: questions,
// optional deduplication, answers, and persistence.
type TriviaService interface {
	// GenerateQuestions runs the question stage only; nothing is persisted.
	GenerateQuestions(ctx context.Context, category string, count int, difficulty domain.Difficulty, dedupe bool) ([]*domain.Question, error)

	// GenerateCompleteQuestionSet runs the full pipeline and persists the
	// result. Questions the answer stage could not cover are dropped from
	// the set.
	GenerateCompleteQuestionSet(ctx context.Context, category string, count int, difficulty domain.Difficulty, dedupe bool) ([]*domain.CompleteQuestion, error)

	// GenerateMultiDifficultySet runs GenerateCompleteQuestionSet once per
	// requested tier concurrently. A failed tier contributes an empty list;
	// sibling tiers are unaffected.
	GenerateMultiDifficultySet(ctx context.Context, category string, counts map[domain.Difficulty]int, dedupe bool) (map[domain.Difficulty][]*domain.CompleteQuestion, error)
}

type triviaService struct {
	generator    QuestionGenerator
	answers      AnswerGenerator
	dedup        Deduplicator
	questionRepo domain.QuestionRepository
	answerRepo   domain.AnswerRepository
	logger       *zap.Logger
}

// NewTriviaService creates a new instance of triviaService.
func NewTriviaService(
	generator QuestionGenerator,
	answers AnswerGenerator,
	dedup Deduplicator,
	questionRepo domain.QuestionRepository,
	answerRepo domain.AnswerRepository,
	logger *zap.Logger,
) TriviaService {
	return &triviaService{
		generator:    generator,
		answers:      answers,
		dedup:        dedup,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		logger:       logger,
	}
}

// GenerateQuestions implements TriviaService.
func (s *triviaService) GenerateQuestions(ctx context.Context, category string, count int, difficulty domain.Difficulty, dedupe bool) ([]*domain.Question, error) {
	questions, err := s.generator.Generate(ctx, category, count, difficulty)
	if err != nil {
		return nil, err
	}
	if dedupe {
		questions = s.dedup.Deduplicate(ctx, questions)
	}
	return questions, nil
}

// GenerateCompleteQuestionSet implements TriviaService. Persistence order
// matters: questions are saved first so their generated ids can be bound onto
// the answers before those are saved.
func (s *triviaService) GenerateCompleteQuestionSet(ctx context.Context, category string, count int, difficulty domain.Difficulty, dedupe bool) ([]*domain.CompleteQuestion, error) {
	questions, err := s.GenerateQuestions(ctx, category, count, difficulty, dedupe)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return []*domain.CompleteQuestion{}, nil
	}

	answers := s.answers.Generate(ctx, questions)

	paired := make([]*domain.Question, 0, len(questions))
	pairedAnswers := make([]*domain.Answer, 0, len(questions))
	for i, question := range questions {
		if answers[i] == nil {
			s.logger.Info("dropping question without answer",
				zap.String("category", category),
				zap.String("content", question.Content))
			continue
		}
		paired = append(paired, question)
		pairedAnswers = append(pairedAnswers, answers[i])
	}
	if len(paired) == 0 {
		return []*domain.CompleteQuestion{}, nil
	}

	if err := s.questionRepo.SaveQuestions(ctx, paired); err != nil {
		return nil, domain.NewInternalError("failed to persist questions", err)
	}
	for i, answer := range pairedAnswers {
		answer.QuestionID = paired[i].ID
	}
	if err := s.answerRepo.SaveAnswers(ctx, pairedAnswers); err != nil {
		return nil, domain.NewInternalError("failed to persist answers", err)
	}

	set := make([]*domain.CompleteQuestion, len(paired))
	for i := range paired {
		set[i] = &domain.CompleteQuestion{
			Question: paired[i],
			Answer:   pairedAnswers[i],
		}
	}
	return set, nil
}

// GenerateMultiDifficultySet implements TriviaService. Tiers run
// concurrently; the result map has an entry for every requested tier even
// when its pipeline failed.
func (s *triviaService) GenerateMultiDifficultySet(ctx context.Context, category string, counts map[domain.Difficulty]int, dedupe bool) (map[domain.Difficulty][]*domain.CompleteQuestion, error) {
	if category == "" {
		return nil, domain.NewInvalidCategoryError(category)
	}

	var (
		mu      sync.Mutex
		results = make(map[domain.Difficulty][]*domain.CompleteQuestion, len(counts))
	)

	group, groupCtx := errgroup.WithContext(ctx)
	for _, tier := range domain.AllDifficulties {
		count, ok := counts[tier]
		if !ok || count <= 0 {
			continue
		}

		group.Go(func() error {
			set, err := s.GenerateCompleteQuestionSet(groupCtx, category, count, tier, dedupe)
			if err != nil {
				s.logger.Warn("difficulty tier failed, returning empty set",
					zap.String("category", category),
					zap.String("difficulty", string(tier)),
					zap.Error(err))
				set = []*domain.CompleteQuestion{}
			}

			mu.Lock()
			results[tier] = set
			mu.Unlock()
			// Tier failures degrade to empty sets; never cancel siblings.
			return nil
		})
	}

	_ = group.Wait()
	return results, nil
}
