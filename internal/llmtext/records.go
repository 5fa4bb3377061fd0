package llmtext

import (
	"fmt"
	"strconv"
	"strings"
)

// QuestionRecord is one validated question row recovered from model output.
type QuestionRecord struct {
	Content string
}

// AnswerRecord is one validated answer row recovered from model output.
type AnswerRecord struct {
	CorrectAnswer    string
	IncorrectAnswers []string
}

// Providers disagree on field naming; each canonical field carries an ordered
// candidate list tried first-match.
var (
	questionContentKeys = []string{"question", "Question", "content", "text", "question_text"}
	correctAnswerKeys   = []string{"correct_answer", "correctAnswer", "Correct Answer", "answer", "Answer"}
	incorrectAnswerKeys = []string{
		"incorrect_answers",
		"incorrectAnswers",
		"Incorrect Answer Array",
		"incorrect_answer_array",
		"distractors",
		"wrong_answers",
	}
)

// QuestionRecords maps raw decoded items onto question records, dropping any
// item that is not an object or is missing its content field.
func QuestionRecords(items []any) []QuestionRecord {
	records := make([]QuestionRecord, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		content, ok := firstString(obj, questionContentKeys)
		if !ok || strings.TrimSpace(content) == "" {
			continue
		}
		records = append(records, QuestionRecord{Content: strings.TrimSpace(content)})
	}
	return records
}

// AnswerRecords maps raw decoded items onto answer records. An item missing
// the correct answer, or whose incorrect answers cannot be coerced to a
// non-empty string list, is dropped; the rest of the batch continues.
func AnswerRecords(items []any) []AnswerRecord {
	records := make([]AnswerRecord, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		correct, ok := firstString(obj, correctAnswerKeys)
		if !ok || strings.TrimSpace(correct) == "" {
			continue
		}
		raw, ok := firstValue(obj, incorrectAnswerKeys)
		if !ok {
			continue
		}
		incorrect, ok := stringList(raw)
		if !ok || len(incorrect) == 0 {
			continue
		}
		records = append(records, AnswerRecord{
			CorrectAnswer:    strings.TrimSpace(correct),
			IncorrectAnswers: incorrect,
		})
	}
	return records
}

func firstValue(obj map[string]any, keys []string) (any, bool) {
	for _, key := range keys {
		if v, ok := obj[key]; ok {
			return v, true
		}
	}
	return nil, false
}

func firstString(obj map[string]any, keys []string) (string, bool) {
	v, ok := firstValue(obj, keys)
	if !ok {
		return "", false
	}
	s, ok := stringify(v)
	return s, ok
}

// stringList coerces a decoded value into a string slice: lists are
// stringified element by element, a bare string is split on commas.
// Structured elements (nested objects or lists) fail the coercion.
func stringList(v any) ([]string, bool) {
	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := stringify(item)
			if !ok {
				return nil, false
			}
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			out = append(out, s)
		}
		return out, true
	case string:
		parts := strings.Split(t, ",")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return fmt.Sprintf("%t", t), true
	default:
		return "", false
	}
}
