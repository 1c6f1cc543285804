// Package domain contains the core business entities for Agenda.
// These entities represent the fundamental concepts of the task calendar
// and are independent of any external frameworks or infrastructure.
package domain

import (
	"errors"
	"time"
)

// Common domain errors.
var (
	ErrEmptyTaskTitle   = errors.New("task title cannot be empty")
	ErrEmptyDateKey     = errors.New("task date cannot be empty")
	ErrTaskNotFound     = errors.New("task not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrEmptyCategory    = errors.New("category label cannot be empty")
)

// Task represents a single calendar entry. StartTime and EndTime hold
// "HH:MM" clock strings; a nil StartTime marks the task as "anytime" so
// the placement engine offers it a free slot instead of a fixed one.
type Task struct {
	ID         string
	Title      string
	Notes      string
	DateKey    string
	StartTime  *string
	EndTime    *string
	CategoryID *string
	Completed  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTask creates a new task on the given day.
func NewTask(title, dateKey string) (*Task, error) {
	if title == "" {
		return nil, ErrEmptyTaskTitle
	}
	if dateKey == "" {
		return nil, ErrEmptyDateKey
	}

	now := time.Now()
	return &Task{
		ID:        generateID(),
		Title:     title,
		DateKey:   dateKey,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Complete marks the task as done.
func (t *Task) Complete() {
	t.Completed = true
	t.UpdatedAt = time.Now()
}

// Reopen clears the completed flag.
func (t *Task) Reopen() {
	t.Completed = false
	t.UpdatedAt = time.Now()
}

// ToggleCompleted flips the completed flag and returns the new value.
func (t *Task) ToggleCompleted() bool {
	t.Completed = !t.Completed
	t.UpdatedAt = time.Now()
	return t.Completed
}

// Reschedule moves the task to another day.
func (t *Task) Reschedule(dateKey string) error {
	if dateKey == "" {
		return ErrEmptyDateKey
	}
	t.DateKey = dateKey
	t.UpdatedAt = time.Now()
	return nil
}

// SetTimes sets or clears the start and end clock strings. Passing a nil
// start turns the task back into an anytime task.
func (t *Task) SetTimes(start, end *string) {
	t.StartTime = start
	t.EndTime = end
	t.UpdatedAt = time.Now()
}

// IsScheduled returns true if the task has a fixed start time.
func (t *Task) IsScheduled() bool {
	return t.StartTime != nil && *t.StartTime != ""
}
