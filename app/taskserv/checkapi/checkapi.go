// Package checkapi provides the welcome banner and the liveness and
// readiness probes.
package checkapi

import (
	"context"
	"net/http"

	"github.com/jrazmi/taskserv/bridge/scaffolding/errs"
	"github.com/jrazmi/taskserv/infrastructure/postgresdb"
	"github.com/jrazmi/taskserv/infrastructure/web"
)

// Config holds the dependencies for the check handlers.
type Config struct {
	Build string
	DB    *postgresdb.Pool
}

type api struct {
	build string
	db    *postgresdb.Pool
}

// AddHandlers registers the banner and probe routes.
func AddHandlers(wh *web.WebHandler, cfg Config) {
	a := api{
		build: cfg.Build,
		db:    cfg.DB,
	}

	wh.GET("/{$}", a.httpBanner)
	wh.GET("/liveness", a.httpLiveness)
	wh.GET("/readiness", a.httpReadiness)
}

func (a api) httpBanner(ctx context.Context, r *http.Request) web.Encoder {
	return web.NewTextResponse("taskserv: task API. See /tasks.")
}

func (a api) httpLiveness(ctx context.Context, r *http.Request) web.Encoder {
	return web.NewJSONResponse(struct {
		Status string `json:"status"`
		Build  string `json:"build"`
	}{
		Status: "up",
		Build:  a.build,
	})
}

func (a api) httpReadiness(ctx context.Context, r *http.Request) web.Encoder {
	if err := postgresdb.StatusCheck(ctx, a.db); err != nil {
		return errs.Newf(errs.Internal, "database not ready: %s", err)
	}

	return web.NewJSONResponse(struct {
		Status string `json:"status"`
	}{
		Status: "ready",
	})
}
