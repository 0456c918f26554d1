package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github-activity-feed/config"
	"github-activity-feed/pkg/eventbus"
	"github-activity-feed/pkg/log"
)

// feedEvent is the JSON shape the API publishes for every stored event.
type feedEvent struct {
	ID         string  `json:"id"`
	Timestamp  string  `json:"timestamp"`
	RequestID  *string `json:"request_id"`
	Author     *string `json:"author"`
	Action     string  `json:"action"`
	FromBranch *string `json:"from_branch"`
	ToBranch   *string `json:"to_branch"`
}

// main tails the event bus and logs every stored event.
//
// Pattern:
//  1. Initialize config and logger (same as cmd/api/main.go)
//  2. Connect to NATS
//  3. Subscribe to <subject_prefix>.>, run until SIGINT/SIGTERM
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.NATS.URL == "" {
		logger.Error(ctx, "nats.url is required for the consumer")
		return
	}

	logger.Info(ctx, "Starting consumer service...")

	consumer, err := eventbus.NewConsumer(cfg.NATS.URL)
	if err != nil {
		logger.Error(ctx, "Failed to connect to NATS: ", err)
		return
	}
	defer consumer.Close()

	subject := cfg.NATS.SubjectPrefix + ".>"
	logger.Infof(ctx, "Consuming %s", subject)

	if err := consumer.Consume(ctx, subject, handleEvent(logger)); err != nil {
		logger.Error(ctx, "Consumer stopped with error: ", err)
		return
	}

	logger.Info(ctx, "Consumer stopped gracefully")
}

func handleEvent(l log.Logger) eventbus.HandlerFunc {
	return func(ctx context.Context, subject string, data []byte) {
		var e feedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			l.Warnf(ctx, "Dropping malformed message on %s: %v", subject, err)
			return
		}
		l.Infof(ctx, "[%s] %s by %s: %s -> %s (%s)",
			e.Timestamp, e.Action, deref(e.Author), deref(e.FromBranch), deref(e.ToBranch), deref(e.RequestID))
	}
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
