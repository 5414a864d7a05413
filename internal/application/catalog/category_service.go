package catalog

import (
	"context"

	"github.com/littlelemon/backend/internal/domain/catalog"
	"github.com/littlelemon/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CategoryService handles category use cases
type CategoryService struct {
	categories catalog.CategoryRepository
	logger     *zap.Logger
}

func NewCategoryService(categories catalog.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{categories: categories, logger: logger}
}

// List returns all categories
func (s *CategoryService) List(ctx context.Context) ([]CategoryResponse, error) {
	cats, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryResponse, 0, len(cats))
	for i := range cats {
		out = append(out, *toCategoryResponse(&cats[i]))
	}
	return out, nil
}

// Get returns a single category by id
func (s *CategoryService) Get(ctx context.Context, id uint) (*CategoryResponse, error) {
	cat, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// Create adds a new category. Slugs are unique.
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	if _, err := s.categories.FindBySlug(ctx, req.Slug); err == nil {
		return nil, shared.NewDomainError("CATEGORY_EXISTS", "category with this slug already exists")
	}

	cat, err := catalog.NewCategory(req.Slug, req.Title)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, cat); err != nil {
		return nil, err
	}

	s.logger.Info("category created",
		zap.Uint("id", cat.ID),
		zap.String("slug", cat.Slug))

	return toCategoryResponse(cat), nil
}

// Delete removes a category unless menu items still reference it
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}
