package domain

import (
	"strconv"
	"strings"
	"time"
)

// Difficulty is one of the five fixed tier names.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	DifficultyExpert Difficulty = "Expert"
	DifficultyMaster Difficulty = "Master"
)

// AllDifficulties lists the canonical tiers in ascending order.
var AllDifficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
	DifficultyExpert,
	DifficultyMaster,
}

// ParseDifficulty normalizes free-form difficulty input onto a canonical tier.
// Numeric strings map 1..5 onto Easy..Master; otherwise the first tier whose
// name appears as a substring of the input wins. Unrecognized input defaults
// to Medium.
func ParseDifficulty(raw string) Difficulty {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DifficultyMedium
	}

	if n, err := strconv.Atoi(trimmed); err == nil {
		if n >= 1 && n <= len(AllDifficulties) {
			return AllDifficulties[n-1]
		}
		return DifficultyMedium
	}

	lowered := strings.ToLower(trimmed)
	for _, d := range AllDifficulties {
		if strings.Contains(lowered, strings.ToLower(string(d))) {
			return d
		}
	}
	return DifficultyMedium
}

// Valid reports whether d is one of the canonical tiers.
func (d Difficulty) Valid() bool {
	for _, known := range AllDifficulties {
		if d == known {
			return true
		}
	}
	return false
}

// Question is a generated trivia question. ID is empty until the question is
// persisted.
type Question struct {
	ID         string
	Content    string
	Category   string
	Difficulty Difficulty
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewQuestion creates an unpersisted Question.
func NewQuestion(content, category string, difficulty Difficulty) *Question {
	now := time.Now()
	return &Question{
		Content:    content,
		Category:   category,
		Difficulty: difficulty,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.Content == "" {
		return NewValidationError("content", "content is required")
	}
	if q.Category == "" {
		return NewValidationError("category", "category is required")
	}
	return nil
}

// Answer carries the correct answer and distractors for one question.
// QuestionID stays empty until the owning question has been persisted and the
// answer is bound to its id.
type Answer struct {
	ID               string
	QuestionID       string
	CorrectAnswer    string
	IncorrectAnswers []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewAnswer creates an unbound Answer.
func NewAnswer(correctAnswer string, incorrectAnswers []string) *Answer {
	now := time.Now()
	return &Answer{
		CorrectAnswer:    correctAnswer,
		IncorrectAnswers: incorrectAnswers,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Validate validates the answer
func (a *Answer) Validate() error {
	if a.CorrectAnswer == "" {
		return NewValidationError("correct_answer", "correct answer is required")
	}
	if len(a.IncorrectAnswers) == 0 {
		return NewValidationError("incorrect_answers", "at least one incorrect answer is required")
	}
	return nil
}

// CompleteQuestion is a read-only composite of a question and its answer.
// It is assembled after both halves exist and is never independently persisted.
type CompleteQuestion struct {
	Question *Question
	Answer   *Answer
}

// Category represents a trivia category
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory creates a new Category instance
func NewCategory(name, description string) *Category {
	now := time.Now()
	return &Category{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate validates the category
func (c *Category) Validate() error {
	if c.Name == "" {
		return NewValidationError("name", "name is required")
	}
	return nil
}

// NormalizeCategory canonicalizes a category name for cache keys and prompt
// reuse: lowercased and trimmed.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
