package tasksrepobridge

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jrazmi/taskserv/bridge/scaffolding/errs"
	"github.com/jrazmi/taskserv/core/repositories/tasksrepo"
	"github.com/jrazmi/taskserv/core/scaffolding/fop"
	"github.com/jrazmi/taskserv/infrastructure/web"
)

// QueryParams holds the raw list query strings.
type QueryParams struct {
	Limit     string
	Offset    string
	Completed string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Limit:     q.Get("limit"),
		Offset:    q.Get("offset"),
		Completed: q.Get("completed"),
	}
}

// parseFilter converts the completed query string into a filter. The value
// is parsed strictly: anything other than "true" or "false" is rejected
// rather than coerced, and absence means no filter.
func parseFilter(qp QueryParams) (tasksrepo.QueryFilter, *errs.Error) {
	filter := tasksrepo.QueryFilter{}

	switch qp.Completed {
	case "":
	case "true":
		completed := true
		filter.Completed = &completed
	case "false":
		completed := false
		filter.Completed = &completed
	default:
		return filter, errs.NewFieldErrors(errs.FieldError{
			Field:   "completed",
			Message: "completed must be true or false",
		})
	}

	return filter, nil
}

// parsePage converts the limit/offset query strings into a bounded page.
// The field error names whichever input actually failed.
func parsePage(qp QueryParams) (fop.PageOffset, *errs.Error) {
	page, err := fop.ParsePageOffset(qp.Limit, qp.Offset)
	if err != nil {
		if errors.Is(err, fop.ErrInvalidOffset) {
			return fop.PageOffset{}, errs.NewFieldErrors(errs.FieldError{
				Field:   "offset",
				Message: "offset must be a non-negative integer",
			})
		}
		return fop.PageOffset{}, errs.NewFieldErrors(errs.FieldError{
			Field:   "limit",
			Message: "limit must be an integer between 1 and 100",
		})
	}
	return page, nil
}

// parseTaskID extracts and validates the path id.
func parseTaskID(r *http.Request) (int64, *errs.Error) {
	raw := web.Param(r, "task_id")

	taskID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || taskID <= 0 {
		return 0, errs.NewFieldErrors(errs.FieldError{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}

	return taskID, nil
}
