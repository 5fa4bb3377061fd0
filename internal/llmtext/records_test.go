package llmtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRecords(t *testing.T) {
	items := []any{
		map[string]any{"question": "What is the capital of France?"},
		map[string]any{"Question": "Who wrote Hamlet?"},
		map[string]any{"text": "  What is H2O?  "},
		map[string]any{"irrelevant": "no content field"},
		"not an object",
		map[string]any{"question": "   "},
	}

	records := QuestionRecords(items)
	require.Len(t, records, 3)
	assert.Equal(t, "What is the capital of France?", records[0].Content)
	assert.Equal(t, "Who wrote Hamlet?", records[1].Content)
	assert.Equal(t, "What is H2O?", records[2].Content)
}

func TestAnswerRecords(t *testing.T) {
	items := []any{
		map[string]any{
			"correct_answer":    "Paris",
			"incorrect_answers": []any{"London", "Berlin", "Madrid"},
		},
		map[string]any{
			"correctAnswer":    "Shakespeare",
			"incorrectAnswers": []any{"Marlowe", "Jonson", "Bacon"},
		},
		map[string]any{
			"Correct Answer":         "Blue",
			"Incorrect Answer Array": []any{"Red", "Green", "Yellow"},
		},
	}

	records := AnswerRecords(items)
	require.Len(t, records, 3)
	assert.Equal(t, "Paris", records[0].CorrectAnswer)
	assert.Equal(t, []string{"London", "Berlin", "Madrid"}, records[0].IncorrectAnswers)
	assert.Equal(t, "Shakespeare", records[1].CorrectAnswer)
	assert.Equal(t, "Blue", records[2].CorrectAnswer)
}

func TestAnswerRecordsCommaSeparatedString(t *testing.T) {
	items := []any{
		map[string]any{
			"answer":            "4",
			"incorrect_answers": "3, 5, 6",
		},
	}

	records := AnswerRecords(items)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"3", "5", "6"}, records[0].IncorrectAnswers)
}

func TestAnswerRecordsNumericDistractors(t *testing.T) {
	items := []any{
		map[string]any{
			"correct_answer":    "1969",
			"incorrect_answers": []any{float64(1959), float64(1975), float64(1981)},
		},
	}

	records := AnswerRecords(items)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"1959", "1975", "1981"}, records[0].IncorrectAnswers)
}

func TestAnswerRecordsDropsMalformed(t *testing.T) {
	items := []any{
		map[string]any{"incorrect_answers": []any{"a", "b"}}, // no correct answer
		map[string]any{"correct_answer": "x"},                // no distractors
		map[string]any{
			"correct_answer":    "x",
			"incorrect_answers": []any{map[string]any{"nested": true}},
		}, // uncoercible distractor
		map[string]any{
			"correct_answer":    "keep me",
			"incorrect_answers": []any{"a", "b", "c"},
		},
	}

	records := AnswerRecords(items)
	require.Len(t, records, 1)
	assert.Equal(t, "keep me", records[0].CorrectAnswer)
}
