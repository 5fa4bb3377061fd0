package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sanjaykbiswas/trivia-app-sub001/internal/domain"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/repository/models"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/util"

	"github.com/jmoiron/sqlx"
)

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

const questionColumns = `
		id "id",
		content "content",
		category "category",
		difficulty "difficulty",
		created_at "created_at",
		updated_at "updated_at",
		deleted_at "deleted_at"`

// SaveQuestion implements domain.QuestionRepository. The generated id is
// written back onto the domain object.
func (a *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}

	modelQuestion := toModelQuestion(question)
	modelQuestion.ID = util.NewULID()
	modelQuestion.CreatedAt = time.Now()
	modelQuestion.UpdatedAt = time.Now()

	query := `INSERT INTO questions (
		id, content, category, difficulty, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6
	)`

	_, err := a.db.ExecContext(ctx, query,
		modelQuestion.ID,
		modelQuestion.Content,
		modelQuestion.Category,
		modelQuestion.Difficulty,
		modelQuestion.CreatedAt,
		modelQuestion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	question.ID = modelQuestion.ID
	question.CreatedAt = modelQuestion.CreatedAt
	question.UpdatedAt = modelQuestion.UpdatedAt
	return nil
}

// SaveQuestions persists a batch one row at a time; the first failure aborts
// the batch.
func (a *QuestionDatabaseAdapter) SaveQuestions(ctx context.Context, questions []*domain.Question) error {
	for i, question := range questions {
		if err := a.SaveQuestion(ctx, question); err != nil {
			return fmt.Errorf("failed to save question %d of %d: %w", i+1, len(questions), err)
		}
	}
	return nil
}

// GetQuestionByID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id string) (*domain.Question, error) {
	var modelQuestion models.Question
	query := `SELECT ` + questionColumns + `
	FROM questions
	WHERE id = :1
	AND deleted_at IS NULL`

	err := a.db.GetContext(ctx, &modelQuestion, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by ID %s: %w", id, err)
	}
	return toDomainQuestion(&modelQuestion), nil
}

// GetQuestionsByCategory implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetQuestionsByCategory(ctx context.Context, category string, limit int) ([]*domain.Question, error) {
	var modelQuestions []models.Question
	query := `SELECT ` + questionColumns + `
	FROM questions
	WHERE LOWER(category) = LOWER(:1)
	AND deleted_at IS NULL
	ORDER BY created_at DESC
	FETCH FIRST :2 ROWS ONLY`

	err := a.db.SelectContext(ctx, &modelQuestions, query, category, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions for category %s: %w", category, err)
	}

	questions := make([]*domain.Question, 0, len(modelQuestions))
	for i := range modelQuestions {
		questions = append(questions, toDomainQuestion(&modelQuestions[i]))
	}
	return questions, nil
}

func toModelQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:         q.ID,
		Content:    q.Content,
		Category:   q.Category,
		Difficulty: string(q.Difficulty),
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:         m.ID,
		Content:    m.Content,
		Category:   m.Category,
		Difficulty: domain.Difficulty(m.Difficulty),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
