package dto

import "github.com/sanjaykbiswas/trivia-app-sub001/internal/domain"

// ErrorResponse is the minimal error body returned directly by handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GenerateQuestionsRequest asks for questions at one difficulty tier.
type GenerateQuestionsRequest struct {
	Category   string `json:"category" example:"Science"`
	Count      int    `json:"count" example:"5"`
	Difficulty string `json:"difficulty" example:"Hard"`
	Dedupe     bool   `json:"dedupe" example:"true"`
}

// MultiDifficultyRequest asks for complete question sets across several tiers
// in one call. Counts keys are tier names; unknown names are normalized.
type MultiDifficultyRequest struct {
	Category string         `json:"category" example:"Science"`
	Counts   map[string]int `json:"counts"`
	Dedupe   bool           `json:"dedupe" example:"true"`
}

// QuestionResponse is one generated question.
type QuestionResponse struct {
	ID         string `json:"id,omitempty"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

// AnswerResponse carries the correct answer and distractors for one question.
type AnswerResponse struct {
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// CompleteQuestionResponse pairs a question with its answer.
type CompleteQuestionResponse struct {
	Question QuestionResponse `json:"question"`
	Answer   AnswerResponse   `json:"answer"`
}

// QuestionsResponse wraps a question-only generation result.
type QuestionsResponse struct {
	Questions []QuestionResponse `json:"questions"`
}

// TriviaSetResponse wraps a persisted complete question set.
type TriviaSetResponse struct {
	Questions []CompleteQuestionResponse `json:"questions"`
}

// MultiDifficultyResponse maps tier names to their complete question sets.
type MultiDifficultyResponse struct {
	Sets map[string][]CompleteQuestionResponse `json:"sets"`
}

// CategoryResponse is one catalog entry.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoriesResponse wraps the category catalog.
type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CreateCategoryRequest adds a category to the catalog.
type CreateCategoryRequest struct {
	Name        string `json:"name" example:"Geography"`
	Description string `json:"description,omitempty" example:"Maps, places and borders"`
}

// ToQuestionResponse converts a domain question.
func ToQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Content:    q.Content,
		Category:   q.Category,
		Difficulty: string(q.Difficulty),
	}
}

// ToQuestionsResponse converts a domain question list.
func ToQuestionsResponse(questions []*domain.Question) QuestionsResponse {
	out := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = ToQuestionResponse(q)
	}
	return QuestionsResponse{Questions: out}
}

// ToCompleteQuestionResponse converts a domain question/answer pair.
func ToCompleteQuestionResponse(cq *domain.CompleteQuestion) CompleteQuestionResponse {
	return CompleteQuestionResponse{
		Question: ToQuestionResponse(cq.Question),
		Answer: AnswerResponse{
			CorrectAnswer:    cq.Answer.CorrectAnswer,
			IncorrectAnswers: cq.Answer.IncorrectAnswers,
		},
	}
}

// ToTriviaSetResponse converts a complete question set.
func ToTriviaSetResponse(set []*domain.CompleteQuestion) TriviaSetResponse {
	out := make([]CompleteQuestionResponse, len(set))
	for i, cq := range set {
		out[i] = ToCompleteQuestionResponse(cq)
	}
	return TriviaSetResponse{Questions: out}
}

// ToMultiDifficultyResponse converts per-tier sets keyed by tier name.
func ToMultiDifficultyResponse(sets map[domain.Difficulty][]*domain.CompleteQuestion) MultiDifficultyResponse {
	out := make(map[string][]CompleteQuestionResponse, len(sets))
	for tier, set := range sets {
		converted := make([]CompleteQuestionResponse, len(set))
		for i, cq := range set {
			converted[i] = ToCompleteQuestionResponse(cq)
		}
		out[string(tier)] = converted
	}
	return MultiDifficultyResponse{Sets: out}
}

// ToCategoryResponse converts a domain category.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

// ToCategoriesResponse converts the catalog.
func ToCategoriesResponse(categories []*domain.Category) CategoriesResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = ToCategoryResponse(c)
	}
	return CategoriesResponse{Categories: out}
}
