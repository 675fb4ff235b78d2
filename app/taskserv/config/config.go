// Package config carries the site wide wiring handed to the handler
// builders.
package config

import (
	"github.com/jrazmi/taskserv/core/repositories/tasksrepo"
	"github.com/jrazmi/taskserv/infrastructure/postgresdb"
	"github.com/jrazmi/taskserv/sdk/logger"
	"github.com/jrazmi/taskserv/sdk/telemetry"
)

// Repositories represents the repositories this instance of taskserv needs.
type Repositories struct {
	Tasks *tasksrepo.Repository
}

// Taskserv is the overall configuration for the application.
type Taskserv struct {
	Build  string
	Logger *logger.Logger

	Repositories Repositories
	Telemetry    telemetry.Telemetry

	DB *postgresdb.Pool
}
