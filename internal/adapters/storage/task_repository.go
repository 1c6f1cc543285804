package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/rvalero/agenda-cli/internal/domain"
	"github.com/rvalero/agenda-cli/internal/ports"
)

// taskRepository implements ports.TaskRepository using SQLite.
type taskRepository struct {
	db *sql.DB
}

// newTaskRepository creates a new task repository.
func newTaskRepository(db *sql.DB) ports.TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = "id, title, notes, date_key, start_time, end_time, category_id, completed, created_at, updated_at"

// Save persists a task to storage.
func (r *taskRepository) Save(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.Title,
		task.Notes,
		task.DateKey,
		task.StartTime,
		task.EndTime,
		task.CategoryID,
		task.Completed,
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	return nil
}

// FindByID retrieves a task by its unique identifier.
func (r *taskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// FindByDateRange retrieves tasks for the inclusive [fromKey, toKey] day
// range. The comparison uses the first ten characters of the stored date
// key, which matches the canonical form; records with shorter malformed
// keys still come back and are excluded later by the placement engine, so
// the data-quality signal is not lost at the SQL layer.
func (r *taskRepository) FindByDateRange(ctx context.Context, fromKey, toKey string) ([]*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE substr(date_key, 1, 10) >= ? AND substr(date_key, 1, 10) <= ?
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, fromKey, toKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks by date: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectTasks(rows)
}

// FindAll retrieves every task in insertion order.
func (r *taskRepository) FindAll(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectTasks(rows)
}

// FindByTitle does a fuzzy search for tasks by title, best matches first.
func (r *taskRepository) FindByTitle(ctx context.Context, query string) ([]*domain.Task, error) {
	tasks, err := r.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks for fuzzy search: %w", err)
	}

	titles := make([]string, len(tasks))
	for i, task := range tasks {
		titles[i] = task.Title
	}

	matches := fuzzy.Find(query, titles)

	matched := make([]*domain.Task, 0, len(matches))
	for _, m := range matches {
		matched = append(matched, tasks[m.Index])
	}
	return matched, nil
}

// Update modifies an existing task.
func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET title = ?, notes = ?, date_key = ?, start_time = ?, end_time = ?,
		    category_id = ?, completed = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		task.Title,
		task.Notes,
		task.DateKey,
		task.StartTime,
		task.EndTime,
		task.CategoryID,
		task.Completed,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// Delete removes a task from storage.
func (r *taskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// rowScanner abstracts sql.Row and sql.Rows for scanTask.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanTask reads one task row, translating nullable columns.
func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var notes, startTime, endTime, categoryID sql.NullString

	err := row.Scan(
		&task.ID,
		&task.Title,
		&notes,
		&task.DateKey,
		&startTime,
		&endTime,
		&categoryID,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Notes = notes.String
	if startTime.Valid {
		task.StartTime = &startTime.String
	}
	if endTime.Valid {
		task.EndTime = &endTime.String
	}
	if categoryID.Valid {
		task.CategoryID = &categoryID.String
	}
	return &task, nil
}

// collectTasks drains a result set into a task slice.
func collectTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}
