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

// CategoryDatabaseAdapter implements domain.CategoryRepository using sqlx.DB
type CategoryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

const categoryColumns = `
		id "id",
		name "name",
		description "description",
		created_at "created_at",
		updated_at "updated_at",
		deleted_at "deleted_at"`

// GetAllCategories implements domain.CategoryRepository
func (a *CategoryDatabaseAdapter) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	var modelCategories []models.Category
	query := `SELECT ` + categoryColumns + `
	FROM categories
	WHERE deleted_at IS NULL
	ORDER BY name`

	err := a.db.SelectContext(ctx, &modelCategories, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	categories := make([]*domain.Category, 0, len(modelCategories))
	for i := range modelCategories {
		categories = append(categories, toDomainCategory(&modelCategories[i]))
	}
	return categories, nil
}

// GetCategoryByName implements domain.CategoryRepository using a
// case-insensitive match.
func (a *CategoryDatabaseAdapter) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	var modelCategory models.Category
	query := `SELECT ` + categoryColumns + `
	FROM categories
	WHERE LOWER(name) = LOWER(:1)
	AND deleted_at IS NULL`

	err := a.db.GetContext(ctx, &modelCategory, query, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by name %s: %w", name, err)
	}
	return toDomainCategory(&modelCategory), nil
}

// SaveCategory implements domain.CategoryRepository
func (a *CategoryDatabaseAdapter) SaveCategory(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return fmt.Errorf("cannot save nil category")
	}

	modelCategory := toModelCategory(category)
	modelCategory.ID = util.NewULID()
	modelCategory.CreatedAt = time.Now()
	modelCategory.UpdatedAt = time.Now()

	query := `INSERT INTO categories (
		id, name, description, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5
	)`

	_, err := a.db.ExecContext(ctx, query,
		modelCategory.ID,
		modelCategory.Name,
		modelCategory.Description,
		modelCategory.CreatedAt,
		modelCategory.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}

	category.ID = modelCategory.ID
	category.CreatedAt = modelCategory.CreatedAt
	category.UpdatedAt = modelCategory.UpdatedAt
	return nil
}

func toModelCategory(c *domain.Category) *models.Category {
	return &models.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: util.StringToNullString(c.Description),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toDomainCategory(m *models.Category) *domain.Category {
	return &domain.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description.String,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
