package mid

import (
	"context"
	"errors"
	"net/http"
	"path"

	"github.com/jrazmi/taskserv/bridge/scaffolding/errs"
	"github.com/jrazmi/taskserv/infrastructure/web"
	"github.com/jrazmi/taskserv/sdk/logger"
)

// Errors handles errors coming out of the call chain. Anything that is not
// an application error is logged and replaced with a generic 500 so no
// internal detail leaks to the client.
func Errors(log *logger.Logger) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			resp := next(ctx, r)
			err := isError(resp)
			if err == nil {
				return resp
			}

			var appErr *errs.Error
			if !errors.As(err, &appErr) {
				appErr = errs.Newf(errs.Internal, "Internal Server Error")
			}

			log.ErrorContext(ctx, "handled error during request",
				"err", err,
				"source_err_file", path.Base(appErr.FileName),
				"source_err_func", path.Base(appErr.FuncName))

			if appErr.Code == errs.Internal {
				appErr = errs.New(errs.Internal, "Internal Server Error")
			}

			return appErr
		}
	}
}
