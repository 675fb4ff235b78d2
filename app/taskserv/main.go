package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/jrazmi/taskserv/app/taskserv/checkapi"
	"github.com/jrazmi/taskserv/app/taskserv/config"
	"github.com/jrazmi/taskserv/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/taskserv/bridge/scaffolding/mid"
	"github.com/jrazmi/taskserv/core/repositories/tasksrepo"
	"github.com/jrazmi/taskserv/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/jrazmi/taskserv/infrastructure/postgresdb"
	"github.com/jrazmi/taskserv/infrastructure/web"
	"github.com/jrazmi/taskserv/sdk/environment"
	"github.com/jrazmi/taskserv/sdk/logger"
	"github.com/jrazmi/taskserv/sdk/telemetry"
)

var build = "develop"

const appName = "TASKSERV"

func main() {
	envErr := environment.LoadEnv()
	ctx := context.Background()

	tel := telemetry.NewTelemetry()

	log, err := logger.NewFromEnv(appName, logger.WithTraceIDFn(tel.GetTraceID))
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)
		os.Exit(1)
	}

	// A missing .env file is expected outside local development.
	if envErr != nil {
		log.InfoContext(ctx, "startup", "status", "no .env file loaded", "err", envErr)
	}

	if err := run(ctx, log, tel); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger, tel telemetry.Telemetry) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	// :*: DATABASES :*:
	pool, err := postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger))
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pool.Close()
	}()

	// :*: REPOSITORIES :*:
	log.InfoContext(ctx, "startup", "status", "initializing repository support")

	tasksStore := taskspgxstore.NewStore(log, pool)
	if err := tasksStore.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating tasks schema: %w", err)
	}

	siteCfg := config.Taskserv{
		Build:  build,
		Logger: log,
		Repositories: config.Repositories{
			Tasks: tasksrepo.NewRepository(log, tasksStore),
		},
		Telemetry: tel,
		DB:        pool,
	}

	// :*: WEB :*:
	handler, err := webHandler(siteCfg)
	if err != nil {
		return fmt.Errorf("building web handler: %w", err)
	}

	server, err := web.NewServerFromEnv(appName,
		web.WithHandler(handler),
		web.WithErrorLog(logger.NewStdLogger(log, slog.LevelError)),
	)
	if err != nil {
		return fmt.Errorf("building web server: %w", err)
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig.String())
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig.String())

		ctx, cancel := context.WithTimeout(ctx, server.Config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func webHandler(cfg config.Taskserv) (http.Handler, error) {
	wh, err := web.NewWebHandlerFromEnv(appName,
		web.WithLogging(cfg.Logger.Logger),
		web.WithTelemetry(cfg.Telemetry),
		web.WithGlobalMiddleware(
			mid.Logger(cfg.Logger),
			mid.Errors(cfg.Logger),
			mid.Panics(),
		),
	)
	if err != nil {
		return nil, err
	}

	checkapi.AddHandlers(wh, checkapi.Config{
		Build: cfg.Build,
		DB:    cfg.DB,
	})

	tasksrepobridge.AddHttpRoutes(wh.Group(""), tasksrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Tasks,
	})

	return wh, nil
}
