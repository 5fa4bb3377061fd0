package service

import (
	"context"
	"time"

	"github.com/sanjaykbiswas/trivia-app-sub001/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockTextGenerator ---
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Complete(ctx context.Context, prompt string) string {
	args := m.Called(ctx, prompt)
	return args.String(0)
}

func (m *MockTextGenerator) CompleteArray(ctx context.Context, prompt string) string {
	args := m.Called(ctx, prompt)
	return args.String(0)
}

// --- MockEmbeddingService ---
type MockEmbeddingService struct {
	mock.Mock
}

func (m *MockEmbeddingService) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	args := m.Called(ctx, texts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]float32), args.Error(1)
}

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) SaveQuestion(ctx context.Context, question *domain.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) SaveQuestions(ctx context.Context, questions []*domain.Question) error {
	args := m.Called(ctx, questions)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetQuestionByID(ctx context.Context, id string) (*domain.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetQuestionsByCategory(ctx context.Context, category string, limit int) ([]*domain.Question, error) {
	args := m.Called(ctx, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Question), args.Error(1)
}

// --- MockAnswerRepository ---
type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) SaveAnswer(ctx context.Context, answer *domain.Answer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

func (m *MockAnswerRepository) SaveAnswers(ctx context.Context, answers []*domain.Answer) error {
	args := m.Called(ctx, answers)
	return args.Error(0)
}

func (m *MockAnswerRepository) GetAnswerByQuestionID(ctx context.Context, questionID string) (*domain.Answer, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Answer), args.Error(1)
}

// --- MockCategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockGuidelineService ---
type MockGuidelineService struct {
	mock.Mock
}

func (m *MockGuidelineService) GetCategoryGuidelines(ctx context.Context, category string) string {
	args := m.Called(ctx, category)
	return args.String(0)
}

func (m *MockGuidelineService) GetDifficultyContext(ctx context.Context, category string, difficulty domain.Difficulty) string {
	args := m.Called(ctx, category, difficulty)
	return args.String(0)
}

// --- MockQuestionGenerator ---
type MockQuestionGenerator struct {
	mock.Mock
}

func (m *MockQuestionGenerator) Generate(ctx context.Context, category string, count int, difficulty domain.Difficulty) ([]*domain.Question, error) {
	args := m.Called(ctx, category, count, difficulty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Question), args.Error(1)
}

// --- MockAnswerGenerator ---
type MockAnswerGenerator struct {
	mock.Mock
}

func (m *MockAnswerGenerator) Generate(ctx context.Context, questions []*domain.Question) []*domain.Answer {
	args := m.Called(ctx, questions)
	if args.Get(0) == nil {
		return make([]*domain.Answer, len(questions))
	}
	return args.Get(0).([]*domain.Answer)
}

// --- MockDeduplicator ---
type MockDeduplicator struct {
	mock.Mock
}

func (m *MockDeduplicator) Deduplicate(ctx context.Context, questions []*domain.Question) []*domain.Question {
	args := m.Called(ctx, questions)
	if args.Get(0) == nil {
		return questions
	}
	return args.Get(0).([]*domain.Question)
}
