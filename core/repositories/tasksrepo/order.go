package tasksrepo

import "github.com/jrazmi/taskserv/core/scaffolding/fop"

// Set of fields list queries can be ordered by.
const (
	OrderByPK        = "task_id"
	OrderByCreatedAt = "created_at"
	OrderByUpdatedAt = "updated_at"
)

// DefaultOrderBy returns newest tasks first.
var DefaultOrderBy = fop.NewBy(OrderByCreatedAt, fop.DESC)
