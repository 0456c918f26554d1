package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	eventHTTP "github-activity-feed/internal/event/delivery/http"
	"github-activity-feed/internal/event/repository"
	eventRepo "github-activity-feed/internal/event/repository/postgre"
	eventUC "github-activity-feed/internal/event/usecase"
	"github-activity-feed/internal/webhook"
)

// setupEventDomain wires repository → usecase → handlers for the event feed:
//
//	POST /webhook  ingress (GitHub push / pull_request)
//	GET  /events   paginated history
func (srv HTTPServer) setupEventDomain(ctx context.Context, r gin.IRoutes) error {
	// 1. Repository
	repo := eventRepo.New(srv.postgresDB, srv.l)

	// 2-4. UseCase, handlers, routes
	srv.registerEventRoutes(r, repo)

	srv.l.Infof(ctx, "Event domain registered")
	return nil
}

func (srv HTTPServer) registerEventRoutes(r gin.IRoutes, repo repository.Repository) {
	uc := eventUC.New(repo, srv.publisher, srv.subjectPrefix, srv.l)

	webhookHandler := webhook.NewHandler(uc, srv.dedup, srv.l)
	h := eventHTTP.New(srv.l, uc)

	r.POST("/webhook", webhookHandler.HandleGitHubWebhook)
	eventHTTP.RegisterRoutes(r, h)
}
