package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/sanjaykbiswas/trivia-app-sub001/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func alignedAnswers(questions []*domain.Question) []*domain.Answer {
	answers := make([]*domain.Answer, len(questions))
	for i := range questions {
		answers[i] = domain.NewAnswer(
			fmt.Sprintf("correct-%d", i),
			[]string{"w1", "w2", "w3"},
		)
	}
	return answers
}

func TestGenerateCompleteQuestionSet(t *testing.T) {
	questions := makeQuestions("Q1?", "Q2?", "Q3?", "Q4?", "Q5?")
	for _, q := range questions {
		q.Difficulty = domain.DifficultyHard
	}

	generator := new(MockQuestionGenerator)
	generator.On("Generate", mock.Anything, "Science", 5, domain.DifficultyHard).Return(questions, nil)

	dedup := new(MockDeduplicator)
	dedup.On("Deduplicate", mock.Anything, questions).Return(questions)

	answerGen := new(MockAnswerGenerator)
	answerGen.On("Generate", mock.Anything, questions).Return(alignedAnswers(questions))

	questionRepo := new(MockQuestionRepository)
	questionRepo.On("SaveQuestions", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		for i, q := range args.Get(1).([]*domain.Question) {
			q.ID = fmt.Sprintf("question-%d", i)
		}
	}).Return(nil)

	answerRepo := new(MockAnswerRepository)
	answerRepo.On("SaveAnswers", mock.Anything, mock.Anything).Return(nil)

	svc := NewTriviaService(generator, answerGen, dedup, questionRepo, answerRepo, zap.NewNop())

	set, err := svc.GenerateCompleteQuestionSet(context.Background(), "Science", 5, domain.DifficultyHard, true)
	require.NoError(t, err)
	require.Len(t, set, 5)

	for i, complete := range set {
		assert.Equal(t, domain.DifficultyHard, complete.Question.Difficulty)
		assert.NotEmpty(t, complete.Question.ID)
		assert.NotEmpty(t, complete.Answer.CorrectAnswer)
		assert.Len(t, complete.Answer.IncorrectAnswers, 3)
		// Answers must be bound to their persisted question.
		assert.Equal(t, complete.Question.ID, complete.Answer.QuestionID, "pair %d", i)
	}
}

func TestGenerateCompleteQuestionSetDropsUnansweredQuestions(t *testing.T) {
	questions := makeQuestions("Q1?", "Q2?", "Q3?")

	generator := new(MockQuestionGenerator)
	generator.On("Generate", mock.Anything, "Science", 3, domain.DifficultyMedium).Return(questions, nil)

	answers := alignedAnswers(questions)
	answers[1] = nil
	answerGen := new(MockAnswerGenerator)
	answerGen.On("Generate", mock.Anything, questions).Return(answers)

	questionRepo := new(MockQuestionRepository)
	questionRepo.On("SaveQuestions", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved := args.Get(1).([]*domain.Question)
		require.Len(t, saved, 2, "only answered questions are persisted")
		for i, q := range saved {
			q.ID = fmt.Sprintf("question-%d", i)
		}
	}).Return(nil)

	answerRepo := new(MockAnswerRepository)
	answerRepo.On("SaveAnswers", mock.Anything, mock.Anything).Return(nil)

	svc := NewTriviaService(generator, answerGen, new(MockDeduplicator), questionRepo, answerRepo, zap.NewNop())

	set, err := svc.GenerateCompleteQuestionSet(context.Background(), "Science", 3, domain.DifficultyMedium, false)
	require.NoError(t, err)
	require.Len(t, set, 2)
	assert.Equal(t, "Q1?", set[0].Question.Content)
	assert.Equal(t, "Q3?", set[1].Question.Content)
}

func TestGenerateCompleteQuestionSetEmptyGeneration(t *testing.T) {
	generator := new(MockQuestionGenerator)
	generator.On("Generate", mock.Anything, "Science", 5, domain.DifficultyMedium).Return([]*domain.Question{}, nil)

	questionRepo := new(MockQuestionRepository)
	answerRepo := new(MockAnswerRepository)

	svc := NewTriviaService(generator, new(MockAnswerGenerator), new(MockDeduplicator), questionRepo, answerRepo, zap.NewNop())

	set, err := svc.GenerateCompleteQuestionSet(context.Background(), "Science", 5, domain.DifficultyMedium, false)
	require.NoError(t, err)
	assert.Empty(t, set)
	questionRepo.AssertNotCalled(t, "SaveQuestions")
}

func TestGenerateQuestionsSkipsDedupeWhenDisabled(t *testing.T) {
	questions := makeQuestions("Q1?", "Q2?")

	generator := new(MockQuestionGenerator)
	generator.On("Generate", mock.Anything, "Science", 2, domain.DifficultyEasy).Return(questions, nil)

	dedup := new(MockDeduplicator)

	svc := NewTriviaService(generator, new(MockAnswerGenerator), dedup, new(MockQuestionRepository), new(MockAnswerRepository), zap.NewNop())

	got, err := svc.GenerateQuestions(context.Background(), "Science", 2, domain.DifficultyEasy, false)
	require.NoError(t, err)
	assert.Equal(t, questions, got)
	dedup.AssertNotCalled(t, "Deduplicate")
}

func TestGenerateMultiDifficultySetIsolatesFailedTier(t *testing.T) {
	easyQuestions := makeQuestions("E1?", "E2?")
	for _, q := range easyQuestions {
		q.Difficulty = domain.DifficultyEasy
	}

	generator := new(MockQuestionGenerator)
	generator.On("Generate", mock.Anything, "Science", 2, domain.DifficultyEasy).Return(easyQuestions, nil)
	generator.On("Generate", mock.Anything, "Science", 2, domain.DifficultyHard).Return(nil, domain.NewLLMServiceError(assert.AnError))

	answerGen := new(MockAnswerGenerator)
	answerGen.On("Generate", mock.Anything, easyQuestions).Return(alignedAnswers(easyQuestions))

	questionRepo := new(MockQuestionRepository)
	questionRepo.On("SaveQuestions", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		for i, q := range args.Get(1).([]*domain.Question) {
			q.ID = fmt.Sprintf("question-%d", i)
		}
	}).Return(nil)

	answerRepo := new(MockAnswerRepository)
	answerRepo.On("SaveAnswers", mock.Anything, mock.Anything).Return(nil)

	svc := NewTriviaService(generator, answerGen, new(MockDeduplicator), questionRepo, answerRepo, zap.NewNop())

	results, err := svc.GenerateMultiDifficultySet(context.Background(), "Science", map[domain.Difficulty]int{
		domain.DifficultyEasy: 2,
		domain.DifficultyHard: 2,
	}, false)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Len(t, results[domain.DifficultyEasy], 2)
	assert.Empty(t, results[domain.DifficultyHard], "failed tier yields an empty set, not an error")
}

func TestGenerateMultiDifficultySetSkipsZeroCounts(t *testing.T) {
	svc := NewTriviaService(new(MockQuestionGenerator), new(MockAnswerGenerator), new(MockDeduplicator), new(MockQuestionRepository), new(MockAnswerRepository), zap.NewNop())

	results, err := svc.GenerateMultiDifficultySet(context.Background(), "Science", map[domain.Difficulty]int{
		domain.DifficultyEasy: 0,
	}, false)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGenerateMultiDifficultySetRequiresCategory(t *testing.T) {
	svc := NewTriviaService(new(MockQuestionGenerator), new(MockAnswerGenerator), new(MockDeduplicator), new(MockQuestionRepository), new(MockAnswerRepository), zap.NewNop())

	_, err := svc.GenerateMultiDifficultySet(context.Background(), "", map[domain.Difficulty]int{domain.DifficultyEasy: 1}, false)
	assert.Error(t, err)
}
