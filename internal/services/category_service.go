package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rvalero/agenda-cli/internal/domain"
	"github.com/rvalero/agenda-cli/internal/ports"
)

// ErrCategoryExists is returned when adding a category whose label is
// already taken.
var ErrCategoryExists = errors.New("category already exists")

// CategoryService handles category-related use cases.
type CategoryService struct {
	storage ports.Storage
}

// NewCategoryService creates a new category service.
func NewCategoryService(storage ports.Storage) *CategoryService {
	return &CategoryService{storage: storage}
}

// AddCategory creates a category with the given label. An empty color
// falls back to the default.
func (s *CategoryService) AddCategory(ctx context.Context, label, color string) (*domain.Category, error) {
	if _, err := s.storage.Categories().FindByLabel(ctx, label); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrCategoryExists, label)
	} else if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}

	if color == "" {
		color = domain.DefaultCategoryColor
	}
	category, err := domain.NewCategory(label, color)
	if err != nil {
		return nil, err
	}

	if err := s.storage.Categories().Save(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	return category, nil
}

// ListCategories returns every category ordered by label.
func (s *CategoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.storage.Categories().FindAll(ctx)
}

// RemoveCategory deletes a category by label. Tasks that referenced it
// become uncategorized.
func (s *CategoryService) RemoveCategory(ctx context.Context, label string) error {
	category, err := s.storage.Categories().FindByLabel(ctx, label)
	if err != nil {
		return err
	}
	return s.storage.Categories().Delete(ctx, category.ID)
}
