package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github-activity-feed/config"
	_ "github-activity-feed/docs" // Swagger docs
	eventRepo "github-activity-feed/internal/event/repository/postgre"
	"github-activity-feed/internal/httpserver"
	"github-activity-feed/internal/webhook"
	"github-activity-feed/pkg/eventbus"
	"github-activity-feed/pkg/log"
	"github-activity-feed/pkg/postgre"
)

// @title       GitHub Activity Feed API
// @description Receives GitHub push and pull_request webhooks and serves the stored activity feed.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GitHub Activity Feed...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	postgresDB, err := postgre.Connect(ctx, postgre.Config{
		URL:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgresDB.Close()

	if err := eventRepo.Migrate(postgresDB); err != nil {
		logger.Error(ctx, "Failed to apply schema: ", err)
		return
	}
	logger.Info(ctx, "✅ PostgreSQL ready")

	// 4. Event bus (optional)
	var publisher eventbus.Publisher = eventbus.NoopPublisher{}
	if cfg.NATS.URL != "" {
		natsPublisher, natsErr := eventbus.NewPublisher(cfg.NATS.URL)
		if natsErr != nil {
			logger.Warnf(ctx, "NATS not available (optional): %v", natsErr)
		} else {
			publisher = natsPublisher
			logger.Infof(ctx, "✅ Publishing events to %s.*", cfg.NATS.SubjectPrefix)
		}
	} else {
		logger.Info(ctx, "NATS disabled: nats.url is empty")
	}
	defer publisher.Close()

	// 5. Public webhook URL hint for local development
	if cfg.Webhook.NgrokAPI != "" {
		go func() {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, cfg.Webhook.NgrokAPI)
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
				return
			}
			logger.Infof(ctx, "Auto-detected ngrok URL, point the GitHub webhook at %s/webhook", ngrokURL)
		}()
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		PostgresDB:      postgresDB,
		Publisher:       publisher,
		SubjectPrefix:   cfg.NATS.SubjectPrefix,
		Dedup: webhook.DedupConfig{
			Enabled: cfg.Webhook.DedupEnabled,
			Size:    cfg.Webhook.DedupSize,
			TTL:     cfg.Webhook.DedupTTL,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
