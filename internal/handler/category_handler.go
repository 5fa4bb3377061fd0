package handler

import (
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/dto"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/logger"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CategoryHandler handles category catalog HTTP requests
type CategoryHandler struct {
	service service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler instance
func NewCategoryHandler(service service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: service,
	}
}

// GetAllCategories godoc
// @Summary Get all trivia categories
// @Description Returns the category catalog
// @Tags categories
// @Accept json
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) GetAllCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories(c.Context())
	if err != nil {
		logger.Get().Error("Failed to get categories", zap.Error(err))
		return err
	}

	return c.JSON(dto.ToCategoriesResponse(categories))
}

// CreateCategory godoc
// @Summary Add a category to the catalog
// @Description Persists a new category; an existing category with the same name is returned unchanged
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	req := c.Locals("create_category_request").(dto.CreateCategoryRequest)

	category, err := h.service.CreateCategory(c.Context(), req.Name, req.Description)
	if err != nil {
		logger.Get().Error("Failed to create category",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToCategoryResponse(category))
}
