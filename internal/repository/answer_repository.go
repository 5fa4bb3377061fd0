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

// AnswerDatabaseAdapter implements domain.AnswerRepository using sqlx.DB
type AnswerDatabaseAdapter struct {
	db *sqlx.DB
}

// NewAnswerDatabaseAdapter creates a new instance of AnswerDatabaseAdapter
func NewAnswerDatabaseAdapter(db *sqlx.DB) domain.AnswerRepository {
	return &AnswerDatabaseAdapter{db: db}
}

// SaveAnswer implements domain.AnswerRepository. The answer must already be
// bound to a persisted question.
func (a *AnswerDatabaseAdapter) SaveAnswer(ctx context.Context, answer *domain.Answer) error {
	if answer == nil {
		return fmt.Errorf("cannot save nil answer")
	}
	if answer.QuestionID == "" {
		return fmt.Errorf("cannot save answer without question id")
	}

	modelAnswer := toModelAnswer(answer)
	modelAnswer.ID = util.NewULID()
	modelAnswer.CreatedAt = time.Now()
	modelAnswer.UpdatedAt = time.Now()

	query := `INSERT INTO answers (
		id, question_id, correct_answer, incorrect_answers, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6
	)`

	_, err := a.db.ExecContext(ctx, query,
		modelAnswer.ID,
		modelAnswer.QuestionID,
		modelAnswer.CorrectAnswer,
		modelAnswer.IncorrectAnswers,
		modelAnswer.CreatedAt,
		modelAnswer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save answer: %w", err)
	}

	answer.ID = modelAnswer.ID
	answer.CreatedAt = modelAnswer.CreatedAt
	answer.UpdatedAt = modelAnswer.UpdatedAt
	return nil
}

// SaveAnswers persists a batch one row at a time; the first failure aborts
// the batch.
func (a *AnswerDatabaseAdapter) SaveAnswers(ctx context.Context, answers []*domain.Answer) error {
	for i, answer := range answers {
		if err := a.SaveAnswer(ctx, answer); err != nil {
			return fmt.Errorf("failed to save answer %d of %d: %w", i+1, len(answers), err)
		}
	}
	return nil
}

// GetAnswerByQuestionID implements domain.AnswerRepository
func (a *AnswerDatabaseAdapter) GetAnswerByQuestionID(ctx context.Context, questionID string) (*domain.Answer, error) {
	var modelAnswer models.Answer
	query := `SELECT
		id "id",
		question_id "question_id",
		correct_answer "correct_answer",
		incorrect_answers "incorrect_answers",
		created_at "created_at",
		updated_at "updated_at",
		deleted_at "deleted_at"
	FROM answers
	WHERE question_id = :1
	AND deleted_at IS NULL`

	err := a.db.GetContext(ctx, &modelAnswer, query, questionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get answer for question %s: %w", questionID, err)
	}
	return toDomainAnswer(&modelAnswer), nil
}

func toModelAnswer(a *domain.Answer) *models.Answer {
	return &models.Answer{
		ID:               a.ID,
		QuestionID:       a.QuestionID,
		CorrectAnswer:    a.CorrectAnswer,
		IncorrectAnswers: models.StringSlice(a.IncorrectAnswers),
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func toDomainAnswer(m *models.Answer) *domain.Answer {
	return &domain.Answer{
		ID:               m.ID,
		QuestionID:       m.QuestionID,
		CorrectAnswer:    m.CorrectAnswer,
		IncorrectAnswers: []string(m.IncorrectAnswers),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
