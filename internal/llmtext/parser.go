// Package llmtext turns free-form LLM output into usable data structures.
// Generated text routinely arrives wrapped in prose or markdown fences,
// truncated mid-array, or with small JSON defects; the decoder walks a
// fallback ladder of increasingly aggressive recovery steps and hands back a
// caller-safe default when everything fails. It never returns an error.
package llmtext

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"
)

const failurePreviewLimit = 200

// Decoder applies the recovery ladder to raw model output.
type Decoder struct {
	logger *zap.Logger
}

// NewDecoder creates a Decoder logging ladder exhaustion through logger.
func NewDecoder(logger *zap.Logger) *Decoder {
	return &Decoder{logger: logger}
}

// DecodeList recovers a JSON array from text. The ladder, in order: strict
// decode, fenced-code-block extraction, bracket-span extraction, truncated
// array recovery, character-level sanitization. Single-key wrapper objects
// ({"questions": [...]}) are unwrapped into the bare list. Returns an empty
// list when every step fails.
func (d *Decoder) DecodeList(text string) []any {
	if list, ok := decodeListCandidate(text); ok {
		return list
	}

	// The fenced block, when present, becomes the working text for the
	// remaining steps; the prose around it is noise.
	working := text
	if block, ok := extractFencedBlock(text); ok {
		if list, ok := decodeListCandidate(block); ok {
			return list
		}
		working = block
	}

	span, hasSpan := extractDelimitedSpan(working, '[', ']')
	if hasSpan {
		if list, ok := decodeListCandidate(span); ok {
			return list
		}
	}

	if elems, ok := recoverTruncatedArray(working); ok {
		return elems
	}

	candidate := working
	if hasSpan {
		candidate = span
	}
	if list, ok := decodeListCandidate(sanitizeJSON(candidate)); ok {
		return list
	}

	d.logger.Warn("failed to decode list from model output",
		zap.String("preview", preview(text)))
	return []any{}
}

// DecodeMap recovers a JSON object from text using the same ladder minus the
// array-only truncation recovery. Returns an empty map when every step fails.
func (d *Decoder) DecodeMap(text string) map[string]any {
	if m, ok := decodeMapCandidate(text); ok {
		return m
	}

	working := text
	if block, ok := extractFencedBlock(text); ok {
		if m, ok := decodeMapCandidate(block); ok {
			return m
		}
		working = block
	}

	span, hasSpan := extractDelimitedSpan(working, '{', '}')
	if hasSpan {
		if m, ok := decodeMapCandidate(span); ok {
			return m
		}
	}

	candidate := working
	if hasSpan {
		candidate = span
	}
	if m, ok := decodeMapCandidate(sanitizeJSON(candidate)); ok {
		return m
	}

	d.logger.Warn("failed to decode map from model output",
		zap.String("preview", preview(text)))
	return map[string]any{}
}

func decodeListCandidate(text string) ([]any, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		return nil, false
	}
	return shapeList(v)
}

func decodeMapCandidate(text string) (map[string]any, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(trimmed), &m); err != nil {
		return nil, false
	}
	return m, true
}

// listWrapperKeys are the single-key wrappers models habitually put around
// the array they were asked for.
var listWrapperKeys = []string{"questions", "results", "data", "items", "answers"}

// shapeList accepts either a bare list or a single-key wrapper object whose
// sole value is a list.
func shapeList(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case map[string]any:
		if len(t) != 1 {
			return nil, false
		}
		for key, inner := range t {
			list, ok := inner.([]any)
			if !ok {
				return nil, false
			}
			for _, wrapper := range listWrapperKeys {
				if strings.EqualFold(key, wrapper) {
					return list, true
				}
			}
		}
		return nil, false
	default:
		return nil, false
	}
}

// extractFencedBlock returns the content of the first ``` fenced block,
// skipping an optional language tag on the opening fence.
func extractFencedBlock(text string) (string, bool) {
	start := strings.Index(text, "```")
	if start == -1 {
		return "", false
	}
	rest := text[start+3:]

	// Drop the language tag line ("json", "javascript", ...).
	if newline := strings.IndexByte(rest, '\n'); newline != -1 {
		firstLine := strings.TrimSpace(rest[:newline])
		if firstLine != "" && !strings.ContainsAny(firstLine, "[{") {
			rest = rest[newline+1:]
		}
	}

	end := strings.Index(rest, "```")
	if end == -1 {
		return "", false
	}
	block := strings.TrimSpace(rest[:end])
	if block == "" {
		return "", false
	}
	return block, true
}

// extractDelimitedSpan returns the substring between the first open delimiter
// and the last close delimiter.
func extractDelimitedSpan(text string, open, close byte) (string, bool) {
	start := strings.IndexByte(text, open)
	if start == -1 {
		return "", false
	}
	end := strings.LastIndexByte(text, close)
	if end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// recoverTruncatedArray salvages the longest prefix of complete elements from
// an array cut off mid-stream. The scan tracks bracket/brace depth and string
// state so separators inside strings or nested structures are ignored; the
// trailing partial element is discarded.
func recoverTruncatedArray(text string) ([]any, bool) {
	start := strings.IndexByte(text, '[')
	if start == -1 {
		return nil, false
	}

	body := text[start+1:]
	var (
		elems    []any
		depth    int
		inString bool
		escaped  bool
		elemFrom int
	)

	appendElement := func(raw string) bool {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return false
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return false
		}
		elems = append(elems, v)
		return true
	}

	for i := 0; i < len(body); i++ {
		c := body[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			if c == ']' && depth == 0 {
				// Proper end of the array; the span decode must have failed
				// for another reason, so salvage what parses.
				if raw := body[elemFrom:i]; strings.TrimSpace(raw) != "" {
					if !appendElement(raw) {
						return elems, len(elems) > 0
					}
				}
				return elems, len(elems) > 0
			}
			depth--
		case ',':
			if depth == 0 {
				if !appendElement(body[elemFrom:i]) {
					// First broken element ends the recoverable prefix.
					return elems, len(elems) > 0
				}
				elemFrom = i + 1
			}
		}
	}

	// Input ended mid-array. A trailing element is kept only when it happens
	// to be complete; anything still open is the partial tail and is dropped.
	if depth == 0 && !inString {
		appendElement(body[elemFrom:])
	}
	return elems, len(elems) > 0
}

func preview(text string) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) <= failurePreviewLimit {
		return trimmed
	}
	return trimmed[:failurePreviewLimit] + "..."
}
