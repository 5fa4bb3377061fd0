package domain

import "context"

// TextGenerator is the uniform synchronous interface to the configured LLM
// provider. Implementations absorb provider failures and return the safe
// empty value for the caller's expected shape instead of an error; callers
// treat empty output as "no result".
type TextGenerator interface {
	// Complete returns the raw completion text, or "" on any provider failure.
	Complete(ctx context.Context, prompt string) string

	// CompleteArray is Complete for callers that expect a JSON array; it
	// returns "[]" on any provider failure.
	CompleteArray(ctx context.Context, prompt string) string
}

// EmbeddingService computes embedding vectors for a batch of texts.
// Implementations split the input into provider-sized chunks internally.
type EmbeddingService interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// QuestionRepository persists generated questions. Save assigns the id.
type QuestionRepository interface {
	SaveQuestion(ctx context.Context, question *Question) error
	SaveQuestions(ctx context.Context, questions []*Question) error
	GetQuestionByID(ctx context.Context, id string) (*Question, error)
	GetQuestionsByCategory(ctx context.Context, category string, limit int) ([]*Question, error)
}

// AnswerRepository persists answers after their owning question has an id.
type AnswerRepository interface {
	SaveAnswer(ctx context.Context, answer *Answer) error
	SaveAnswers(ctx context.Context, answers []*Answer) error
	GetAnswerByQuestionID(ctx context.Context, questionID string) (*Answer, error)
}

// CategoryRepository provides access to the category catalog.
type CategoryRepository interface {
	GetAllCategories(ctx context.Context) ([]*Category, error)
	GetCategoryByName(ctx context.Context, name string) (*Category, error)
	SaveCategory(ctx context.Context, category *Category) error
}
