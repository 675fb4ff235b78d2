package tasksrepobridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jrazmi/taskserv/bridge/scaffolding/errs"
	"github.com/jrazmi/taskserv/core/repositories/tasksrepo"
	"github.com/jrazmi/taskserv/infrastructure/web"
	"github.com/jrazmi/taskserv/sdk/validation"
)

// parseTaskInput decodes and validates a create/update body. Title and
// description are sanitized here, before anything reaches the store;
// validation failure means no store call is made.
func parseTaskInput(r *http.Request) (TaskInput, *errs.Error) {
	var input TaskInput
	if err := web.Decode(r, &input); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return TaskInput{}, errs.NewFieldErrors(errs.FieldError{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type),
			})
		}
		return TaskInput{}, errs.Newf(errs.InvalidArgument, "malformed request body")
	}

	var fields []errs.FieldError

	if input.Title != nil {
		*input.Title = validation.SanitizeText(*input.Title)
	}
	if input.Title == nil || *input.Title == "" {
		fields = append(fields, errs.FieldError{
			Field:   "title",
			Message: "title is required and must not be empty",
		})
	}

	if input.Description != nil {
		*input.Description = validation.SanitizeText(*input.Description)
	}

	if len(fields) > 0 {
		return TaskInput{}, errs.NewFieldErrors(fields...)
	}

	return input, nil
}

// httpCreate handles POST /tasks.
func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	input, appErr := parseTaskInput(r)
	if appErr != nil {
		return appErr
	}

	task, err := b.taskRepository.Create(ctx, MarshalCreateToRepository(input))
	if err != nil {
		return errs.Newf(errs.Internal, "create task: %s", err)
	}

	return web.NewJSONResponseWithStatus(MarshalToBridge(task), http.StatusCreated)
}

// httpList handles GET /tasks with optional completed filter and
// limit/offset paging.
func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	filter, appErr := parseFilter(qp)
	if appErr != nil {
		return appErr
	}

	page, appErr := parsePage(qp)
	if appErr != nil {
		return appErr
	}

	b.log.DebugContext(ctx, "listing tasks", "limit", page.Limit, "offset", page.Offset, "filtered", filter.Completed != nil)

	tasks, err := b.taskRepository.Query(ctx, filter, tasksrepo.DefaultOrderBy, page)
	if err != nil {
		return errs.Newf(errs.Internal, "query tasks: %s", err)
	}

	count, err := b.taskRepository.Count(ctx, filter)
	if err != nil {
		return errs.Newf(errs.Internal, "count tasks: %s", err)
	}

	return web.NewJSONResponse(listResponse{
		Tasks: MarshalListToBridge(tasks),
		Count: count,
	})
}

// httpGetByID handles GET /tasks/{task_id}.
func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	taskID, appErr := parseTaskID(r)
	if appErr != nil {
		return appErr
	}

	task, err := b.taskRepository.QueryByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "task %d not found", taskID)
		}
		return errs.Newf(errs.Internal, "query task: %s", err)
	}

	return web.NewJSONResponse(taskResponse{Task: MarshalToBridge(task)})
}

// httpUpdate handles PUT /tasks/{task_id} as a full replace of the mutable
// fields.
func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	taskID, appErr := parseTaskID(r)
	if appErr != nil {
		return appErr
	}

	input, appErr := parseTaskInput(r)
	if appErr != nil {
		return appErr
	}

	if err := b.taskRepository.Update(ctx, taskID, MarshalUpdateToRepository(input)); err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "task %d not found", taskID)
		}
		return errs.Newf(errs.Internal, "update task: %s", err)
	}

	return web.NewJSONResponse(confirmResponse{
		Message: "task updated",
		TaskID:  taskID,
	})
}

// httpDelete handles DELETE /tasks/{task_id}. Deleting an already deleted
// id reports not found again rather than an error.
func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	taskID, appErr := parseTaskID(r)
	if appErr != nil {
		return appErr
	}

	if err := b.taskRepository.Delete(ctx, taskID); err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "task %d not found", taskID)
		}
		return errs.Newf(errs.Internal, "delete task: %s", err)
	}

	return web.NewJSONResponse(confirmResponse{
		Message: "task deleted",
		TaskID:  taskID,
	})
}
