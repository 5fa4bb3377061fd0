package middleware

import (
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/dto"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateGenerateRequest validates the body of single-tier generation
// requests and stores the parsed request for the handler.
func (vm *ValidationMiddleware) ValidateGenerateRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.GenerateQuestionsRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if errors := vm.validator.ValidateGenerateRequest(req.Category, req.Count); len(errors) > 0 {
			return errors // Handled by ErrorHandler middleware
		}

		c.Locals("generate_request", req)
		return c.Next()
	}
}

// ValidateMultiDifficultyRequest validates the body of multi-tier requests.
func (vm *ValidationMiddleware) ValidateMultiDifficultyRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.MultiDifficultyRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if errors := vm.validator.ValidateMultiDifficultyRequest(req.Category, req.Counts); len(errors) > 0 {
			return errors
		}

		c.Locals("multi_difficulty_request", req)
		return c.Next()
	}
}

// ValidateCreateCategoryRequest validates the body of catalog inserts.
func (vm *ValidationMiddleware) ValidateCreateCategoryRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.CreateCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if errors := vm.validator.ValidateCreateCategoryRequest(req.Name); len(errors) > 0 {
			return errors
		}

		c.Locals("create_category_request", req)
		return c.Next()
	}
}
