package mid

import (
	"context"
	"net/http"
	"runtime/debug"

	"github.com/jrazmi/taskserv/bridge/scaffolding/errs"
	"github.com/jrazmi/taskserv/infrastructure/web"
)

// Panics recovers from panics in the call chain and converts them into an
// internal error for the Errors middleware to handle.
func Panics() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) (resp web.Encoder) {
			defer func() {
				if rec := recover(); rec != nil {
					trace := debug.Stack()
					resp = errs.Newf(errs.Internal, "PANIC [%v] TRACE[%s]", rec, string(trace))
				}
			}()

			return next(ctx, r)
		}
	}
}
