package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github-activity-feed/internal/webhook"
	"github-activity-feed/pkg/eventbus"
	"github-activity-feed/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Storage
	postgresDB *sql.DB

	// Event domain
	publisher     eventbus.Publisher
	subjectPrefix string
	dedup         webhook.DedupConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	PostgresDB *sql.DB

	Publisher     eventbus.Publisher
	SubjectPrefix string
	Dedup         webhook.DedupConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		postgresDB:      cfg.PostgresDB,
		publisher:       cfg.Publisher,
		subjectPrefix:   cfg.SubjectPrefix,
		dedup:           cfg.Dedup,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}
	if srv.publisher == nil {
		srv.publisher = eventbus.NoopPublisher{}
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	return nil
}
