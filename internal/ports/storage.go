// Package ports defines the interfaces (driven and driving ports) for the
// Agenda application following hexagonal architecture principles. These
// interfaces define the contracts between the domain layer and external
// infrastructure.
package ports

import (
	"context"

	"github.com/rvalero/agenda-cli/internal/domain"
)

// TaskRepository defines the interface for task persistence.
// This is a driven port (implemented by adapters).
type TaskRepository interface {
	// Save persists a task to storage.
	Save(ctx context.Context, task *domain.Task) error

	// FindByID retrieves a task by its unique identifier.
	FindByID(ctx context.Context, id string) (*domain.Task, error)

	// FindByDateRange retrieves tasks whose date key falls inside the
	// inclusive [fromKey, toKey] range of canonical day keys, in insertion
	// order.
	FindByDateRange(ctx context.Context, fromKey, toKey string) ([]*domain.Task, error)

	// FindAll retrieves every task, in insertion order.
	FindAll(ctx context.Context) ([]*domain.Task, error)

	// FindByTitle does a fuzzy title search, best matches first.
	FindByTitle(ctx context.Context, query string) ([]*domain.Task, error)

	// Update modifies an existing task.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from storage.
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines the interface for category persistence.
// This is a driven port (implemented by adapters).
type CategoryRepository interface {
	// Save persists a category.
	Save(ctx context.Context, category *domain.Category) error

	// FindByID retrieves a category by its unique identifier.
	FindByID(ctx context.Context, id string) (*domain.Category, error)

	// FindByLabel retrieves a category by its exact label.
	FindByLabel(ctx context.Context, label string) (*domain.Category, error)

	// FindAll retrieves the full category universe.
	FindAll(ctx context.Context) ([]*domain.Category, error)

	// Delete removes a category. Tasks referencing it become uncategorized.
	Delete(ctx context.Context, id string) error
}

// Storage is the combined repository interface.
// This is a driven port (implemented by adapters).
type Storage interface {
	// Tasks provides access to task operations.
	Tasks() TaskRepository

	// Categories provides access to category operations.
	Categories() CategoryRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
