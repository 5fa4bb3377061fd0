package validation

import (
	"regexp"
	"strings"

	"github.com/sanjaykbiswas/trivia-app-sub001/internal/domain"
)

const (
	maxQuestionsPerRequest = 100
	maxCategoryLength      = 100
)

var categoryPattern = regexp.MustCompile(`^[a-zA-Z0-9&' _-]+$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCategory validates a category name
func (v *Validator) ValidateCategory(category string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(category) == "" {
		errors = append(errors, domain.NewMissingFieldError("category"))
		return errors
	}
	if len(category) > maxCategoryLength {
		errors = append(errors, domain.NewOutOfRangeError("category", len(category), 1, maxCategoryLength))
	}
	if !categoryPattern.MatchString(category) {
		errors = append(errors, domain.NewInvalidFormatError("category", category))
	}
	return errors
}

// ValidateGenerateRequest validates a single-tier generation request
func (v *Validator) ValidateGenerateRequest(category string, count int) domain.ValidationErrors {
	errors := v.ValidateCategory(category)

	if count < 1 || count > maxQuestionsPerRequest {
		errors = append(errors, domain.NewOutOfRangeError("count", count, 1, maxQuestionsPerRequest))
	}
	return errors
}

// ValidateMultiDifficultyRequest validates a multi-tier generation request.
// Tier names are not validated here; unknown names are normalized downstream.
func (v *Validator) ValidateMultiDifficultyRequest(category string, counts map[string]int) domain.ValidationErrors {
	errors := v.ValidateCategory(category)

	if len(counts) == 0 {
		errors = append(errors, domain.NewMissingFieldError("counts"))
		return errors
	}

	total := 0
	for tier, count := range counts {
		if count < 0 {
			errors = append(errors, domain.NewOutOfRangeError("counts."+tier, count, 0, maxQuestionsPerRequest))
			continue
		}
		total += count
	}
	if total < 1 || total > maxQuestionsPerRequest {
		errors = append(errors, domain.NewOutOfRangeError("counts", total, 1, maxQuestionsPerRequest))
	}
	return errors
}

// ValidateCreateCategoryRequest validates a catalog insert
func (v *Validator) ValidateCreateCategoryRequest(name string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
		return errors
	}
	if len(name) > maxCategoryLength {
		errors = append(errors, domain.NewOutOfRangeError("name", len(name), 1, maxCategoryLength))
	}
	if !categoryPattern.MatchString(name) {
		errors = append(errors, domain.NewInvalidFormatError("name", name))
	}
	return errors
}
