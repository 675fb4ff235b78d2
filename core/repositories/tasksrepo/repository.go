// Package tasksrepo provides business access to task records.
package tasksrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/taskserv/core/scaffolding/fop"
	"github.com/jrazmi/taskserv/infrastructure/postgresdb"
	"github.com/jrazmi/taskserv/sdk/logger"
)

// Set of error variables for the repository.
var (
	ErrNotFound = errors.New("task not found")
)

// Storer defines the complete data storage interface for Task.
type Storer interface {
	Create(ctx context.Context, input NewTask) (Task, error)
	Query(ctx context.Context, filter QueryFilter, orderBy fop.By, page fop.PageOffset) ([]Task, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, taskID int64) (Task, error)
	Update(ctx context.Context, taskID int64, input UpdateTask) error
	Delete(ctx context.Context, taskID int64) error
}

// Repository provides access to task storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Task repository.
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// Create persists a new task and returns it with the assigned id and
// timestamps.
func (r *Repository) Create(ctx context.Context, input NewTask) (Task, error) {
	task, err := r.storer.Create(ctx, input)
	if err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}

	r.log.InfoContext(ctx, "created task", "task_id", task.TaskID)

	return task, nil
}

// Query returns a page of tasks matching the filter.
func (r *Repository) Query(ctx context.Context, filter QueryFilter, orderBy fop.By, page fop.PageOffset) ([]Task, error) {
	tasks, err := r.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	return tasks, nil
}

// Count returns the total number of tasks matching the filter.
func (r *Repository) Count(ctx context.Context, filter QueryFilter) (int, error) {
	count, err := r.storer.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}

	return count, nil
}

// QueryByID returns the task with the given id.
func (r *Repository) QueryByID(ctx context.Context, taskID int64) (Task, error) {
	task, err := r.storer.QueryByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return Task{}, ErrNotFound
		}
		return Task{}, fmt.Errorf("query task %d: %w", taskID, err)
	}

	return task, nil
}

// Update performs a full replace of the task's mutable fields and bumps
// updated_at.
func (r *Repository) Update(ctx context.Context, taskID int64, input UpdateTask) error {
	if err := r.storer.Update(ctx, taskID, input); err != nil {
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update task %d: %w", taskID, err)
	}

	r.log.InfoContext(ctx, "updated task", "task_id", taskID)

	return nil
}

// Delete removes the task permanently. There is no soft delete.
func (r *Repository) Delete(ctx context.Context, taskID int64) error {
	if err := r.storer.Delete(ctx, taskID); err != nil {
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete task %d: %w", taskID, err)
	}

	r.log.InfoContext(ctx, "deleted task", "task_id", taskID)

	return nil
}
