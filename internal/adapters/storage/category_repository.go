package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rvalero/agenda-cli/internal/domain"
	"github.com/rvalero/agenda-cli/internal/ports"
)

// categoryRepository implements ports.CategoryRepository using SQLite.
type categoryRepository struct {
	db *sql.DB
}

// newCategoryRepository creates a new category repository.
func newCategoryRepository(db *sql.DB) ports.CategoryRepository {
	return &categoryRepository{db: db}
}

// Save persists a category to storage.
func (r *categoryRepository) Save(ctx context.Context, category *domain.Category) error {
	query := `INSERT INTO categories (id, label, color) VALUES (?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, category.ID, category.Label, category.Color)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

// FindByID retrieves a category by its unique identifier.
func (r *categoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `SELECT id, label, color FROM categories WHERE id = ?`

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

// FindByLabel retrieves a category by its exact label.
func (r *categoryRepository) FindByLabel(ctx context.Context, label string) (*domain.Category, error) {
	query := `SELECT id, label, color FROM categories WHERE label = ?`

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, label))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

// FindAll retrieves every category ordered by label.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*domain.Category, error) {
	query := `SELECT id, label, color FROM categories ORDER BY label`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []*domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

// Delete removes a category. Tasks that referenced it keep existing with
// their category cleared by the foreign key's ON DELETE SET NULL.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// scanCategory reads one category row.
func scanCategory(row rowScanner) (*domain.Category, error) {
	var category domain.Category
	if err := row.Scan(&category.ID, &category.Label, &category.Color); err != nil {
		return nil, err
	}
	return &category, nil
}
