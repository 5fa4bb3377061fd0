package repository

import (
	"context"
	"testing"
	"time"

	"github.com/sanjaykbiswas/trivia-app-sub001/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestSaveQuestion(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	question := domain.NewQuestion("What is the speed of light?", "Science", domain.DifficultyHard)

	mock.ExpectExec("INSERT INTO questions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveQuestion(context.Background(), question)
	require.NoError(t, err)
	assert.NotEmpty(t, question.ID, "save must assign an id")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveQuestionNil(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	assert.Error(t, repo.SaveQuestion(context.Background(), nil))
}

func TestSaveQuestions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	questions := []*domain.Question{
		domain.NewQuestion("Q1", "History", domain.DifficultyEasy),
		domain.NewQuestion("Q2", "History", domain.DifficultyEasy),
	}

	mock.ExpectExec("INSERT INTO questions").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO questions").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveQuestions(context.Background(), questions))
	assert.NotEmpty(t, questions[0].ID)
	assert.NotEmpty(t, questions[1].ID)
	assert.NotEqual(t, questions[0].ID, questions[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuestionByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "content", "category", "difficulty", "created_at", "updated_at", "deleted_at"}).
		AddRow("01HQ", "What is H2O?", "Science", "Easy", now, now, nil)

	mock.ExpectQuery("SELECT").WithArgs("01HQ").WillReturnRows(rows)

	question, err := repo.GetQuestionByID(context.Background(), "01HQ")
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, "What is H2O?", question.Content)
	assert.Equal(t, domain.DifficultyEasy, question.Difficulty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuestionByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	rows := sqlmock.NewRows([]string{"id", "content", "category", "difficulty", "created_at", "updated_at", "deleted_at"})
	mock.ExpectQuery("SELECT").WithArgs("missing").WillReturnRows(rows)

	question, err := repo.GetQuestionByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, question)
}

func TestGetQuestionsByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "content", "category", "difficulty", "created_at", "updated_at", "deleted_at"}).
		AddRow("a", "Q1", "History", "Medium", now, now, nil).
		AddRow("b", "Q2", "History", "Hard", now, now, nil)

	mock.ExpectQuery("SELECT").WithArgs("History", 10).WillReturnRows(rows)

	questions, err := repo.GetQuestionsByCategory(context.Background(), "History", 10)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, domain.DifficultyHard, questions[1].Difficulty)
}
