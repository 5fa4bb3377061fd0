package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sanjaykbiswas/trivia-app-sub001/internal/cache"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/domain"

	"go.uber.org/zap"
)

const defaultCategoryCacheTTL = 1 * time.Hour

// CategoryService serves the category catalog with a TTL cache in front of
// the repository.
type CategoryService interface {
	GetAllCategories(ctx context.Context) ([]*domain.Category, error)
	CreateCategory(ctx context.Context, name, description string) (*domain.Category, error)
}

type categoryService struct {
	repo   domain.CategoryRepository
	cache  domain.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCategoryService creates a new instance of categoryService. A
// non-positive ttl falls back to one hour.
func NewCategoryService(repo domain.CategoryRepository, cacheClient domain.Cache, ttl time.Duration, logger *zap.Logger) CategoryService {
	if ttl <= 0 {
		ttl = defaultCategoryCacheTTL
	}
	return &categoryService{
		repo:   repo,
		cache:  cacheClient,
		ttl:    ttl,
		logger: logger,
	}
}

func categoryCatalogKey() string {
	return cache.GenerateCacheKey("category", "catalog", "all")
}

// GetAllCategories reads through the cache: a hit is served from the cached
// JSON, a miss loads from the repository and repopulates the cache. Cache
// failures degrade to direct repository reads.
func (s *categoryService) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	key := categoryCatalogKey()

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var categories []*domain.Category
		if err := json.Unmarshal([]byte(cached), &categories); err == nil {
			return categories, nil
		}
		s.logger.Warn("discarding unreadable category cache entry", zap.String("key", key))
	} else if err != domain.ErrCacheMiss {
		s.logger.Warn("category cache read failed", zap.Error(err))
	}

	categories, err := s.repo.GetAllCategories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("category repository failed", err)
	}

	if payload, err := json.Marshal(categories); err == nil {
		if err := s.cache.Set(ctx, key, string(payload), s.ttl); err != nil {
			s.logger.Warn("category cache write failed", zap.Error(err))
		}
	}
	return categories, nil
}

// CreateCategory persists a new category and invalidates the catalog cache.
// An existing category with the same name is returned as-is.
func (s *categoryService) CreateCategory(ctx context.Context, name, description string) (*domain.Category, error) {
	category := domain.NewCategory(name, description)
	if err := category.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetCategoryByName(ctx, name)
	if err != nil {
		return nil, domain.NewInternalError("category repository failed", err)
	}
	if existing != nil {
		return existing, nil
	}

	if err := s.repo.SaveCategory(ctx, category); err != nil {
		return nil, domain.NewInternalError("category repository failed", err)
	}

	if err := s.cache.Delete(ctx, categoryCatalogKey()); err != nil {
		s.logger.Warn("category cache invalidation failed", zap.Error(err))
	}
	return category, nil
}
