package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"mail-task-planner/config"
	"mail-task-planner/pkg/dateparse"
	"mail-task-planner/pkg/gcalendar"
	"mail-task-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin *gin.Engine
	l   log.Logger
	cfg *config.Config

	// Optional infrastructure. A nil db selects the in-memory task store; a
	// nil calendar disables schedule export.
	postgresDB *sql.DB
	calendar   *gcalendar.Client

	normalizer *dateparse.Normalizer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger     log.Logger
	Cfg        *config.Config
	PostgresDB *sql.DB
	Calendar   *gcalendar.Client
	Normalizer *dateparse.Normalizer
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	if cfg.Cfg == nil {
		return nil, errors.New("config is required")
	}
	gin.SetMode(cfg.Cfg.HTTPServer.Mode)

	srv := &HTTPServer{
		l:          cfg.Logger,
		gin:        gin.New(),
		cfg:        cfg.Cfg,
		postgresDB: cfg.PostgresDB,
		calendar:   cfg.Calendar,
		normalizer: cfg.Normalizer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.cfg.HTTPServer.Port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg.HTTPServer.Mode == "" {
		return errors.New("mode is required")
	}
	if srv.normalizer == nil {
		return errors.New("normalizer is required")
	}
	return nil
}
