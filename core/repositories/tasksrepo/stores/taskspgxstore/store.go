// Package taskspgxstore provides the Postgres implementation of the
// tasksrepo.Storer interface.
package taskspgxstore

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jrazmi/taskserv/core/repositories/tasksrepo"
	"github.com/jrazmi/taskserv/core/scaffolding/fop"
	"github.com/jrazmi/taskserv/infrastructure/postgresdb"
	"github.com/jrazmi/taskserv/sdk/logger"
)

const tasksTable = "tasks"

// Store provides database access for Task.
type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// NewStore creates a new Task store.
func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// Migrate creates the tasks table and its indexes if they don't exist.
// Safe to run on every startup.
func (s *Store) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + tasksTable + ` (
    task_id     BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    completed   BOOLEAN NOT NULL DEFAULT false,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_completed ON ` + tasksTable + ` (completed)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_created ON ` + tasksTable + ` (created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure tasks schema: %w", postgresdb.HandlePgError(err))
		}
	}

	return nil
}

// Create inserts a new task row and returns it with the assigned id and
// timestamps.
func (s *Store) Create(ctx context.Context, input tasksrepo.NewTask) (tasksrepo.Task, error) {
	query := `
	INSERT INTO ` + tasksTable + ` (title, description, completed)
	VALUES (@title, @description, @completed)
	RETURNING task_id, title, description, completed, created_at, updated_at`

	data := pgx.NamedArgs{
		"title":       input.Title,
		"description": input.Description,
		"completed":   input.Completed,
	}

	rows, err := s.pool.Query(ctx, query, data)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return task, nil
}

// Query returns a page of tasks matching the filter, ordered per orderBy.
func (s *Store) Query(ctx context.Context, filter tasksrepo.QueryFilter, orderBy fop.By, page fop.PageOffset) ([]tasksrepo.Task, error) {
	data := pgx.NamedArgs{
		"limit":  page.Limit,
		"offset": page.Offset,
	}

	buf := bytes.NewBufferString(`
	SELECT task_id, title, description, completed, created_at, updated_at
	FROM ` + tasksTable)

	applyFilter(filter, data, buf)

	orderClause, err := orderByClause(orderBy)
	if err != nil {
		return nil, err
	}
	buf.WriteString(orderClause)
	buf.WriteString(" LIMIT @limit OFFSET @offset")

	rows, err := s.pool.Query(ctx, buf.String(), data)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return tasks, nil
}

// Count returns the total number of tasks matching the filter.
func (s *Store) Count(ctx context.Context, filter tasksrepo.QueryFilter) (int, error) {
	data := pgx.NamedArgs{}

	buf := bytes.NewBufferString(`SELECT count(*) FROM ` + tasksTable)
	applyFilter(filter, data, buf)

	var count int
	if err := s.pool.QueryRow(ctx, buf.String(), data).Scan(&count); err != nil {
		return 0, postgresdb.HandlePgError(err)
	}

	return count, nil
}

// QueryByID returns the task with the given id.
func (s *Store) QueryByID(ctx context.Context, taskID int64) (tasksrepo.Task, error) {
	query := `
	SELECT task_id, title, description, completed, created_at, updated_at
	FROM ` + tasksTable + `
	WHERE task_id = @task_id`

	data := pgx.NamedArgs{
		"task_id": taskID,
	}

	rows, err := s.pool.Query(ctx, query, data)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return task, nil
}

// Update performs a full replace of the mutable fields and refreshes
// updated_at. A missing row surfaces as ErrDBNotFound.
func (s *Store) Update(ctx context.Context, taskID int64, input tasksrepo.UpdateTask) error {
	query := `
	UPDATE ` + tasksTable + `
	SET title = @title,
	    description = @description,
	    completed = @completed,
	    updated_at = now()
	WHERE task_id = @task_id`

	data := pgx.NamedArgs{
		"task_id":     taskID,
		"title":       input.Title,
		"description": input.Description,
		"completed":   input.Completed,
	}

	tag, err := s.pool.Exec(ctx, query, data)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return postgresdb.ErrDBNotFound
	}

	return nil
}

// Delete removes the task row. A missing row surfaces as ErrDBNotFound.
func (s *Store) Delete(ctx context.Context, taskID int64) error {
	query := `DELETE FROM ` + tasksTable + ` WHERE task_id = @task_id`

	data := pgx.NamedArgs{
		"task_id": taskID,
	}

	tag, err := s.pool.Exec(ctx, query, data)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return postgresdb.ErrDBNotFound
	}

	return nil
}

// applyFilter appends WHERE conditions for the set filter fields.
func applyFilter(filter tasksrepo.QueryFilter, data pgx.NamedArgs, buf *bytes.Buffer) {
	var wc []string

	if filter.Completed != nil {
		wc = append(wc, "completed = @completed")
		data["completed"] = *filter.Completed
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		for i, cond := range wc {
			if i > 0 {
				buf.WriteString(" AND ")
			}
			buf.WriteString(cond)
		}
	}
}

// orderByClause validates the order field against the known set and adds
// the primary key as a deterministic tie-break.
func orderByClause(orderBy fop.By) (string, error) {
	switch orderBy.Field {
	case tasksrepo.OrderByPK, tasksrepo.OrderByCreatedAt, tasksrepo.OrderByUpdatedAt:
	default:
		return "", fmt.Errorf("unknown order field: %q", orderBy.Field)
	}

	direction := orderBy.Direction
	switch direction {
	case fop.ASC, fop.DESC:
	default:
		return "", fmt.Errorf("unknown order direction: %q", direction)
	}

	clause := fmt.Sprintf(" ORDER BY %s %s", orderBy.Field, direction)
	if orderBy.Field != tasksrepo.OrderByPK {
		clause += fmt.Sprintf(", %s %s", tasksrepo.OrderByPK, direction)
	}

	return clause, nil
}
