package server

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/hirestack/crm/config"
	"github.com/hirestack/crm/internal/db"
	"github.com/hirestack/crm/internal/handlers"
	"github.com/hirestack/crm/internal/services"
	"github.com/hirestack/crm/internal/store"
	"go.uber.org/zap"
)

// NewDirectory constructs the directory service: API-key gated,
// read-only profile and candidate lookups. It opens its own database
// connection; the two services share state only through the store.
func NewDirectory(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	candidateRepo := store.NewCandidateRepository(dbConn)

	userService := services.NewUserService(userRepo)
	candidateService := services.NewCandidateService(candidateRepo)

	router := newRouter(logger)
	router.Get("/", handlers.Home)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/api/public", func(r chi.Router) {
		handlers.PublicRouter(r, userService, candidateService)
	})

	return newServer(router, dbConn, cfg.DirectoryPort), nil
}
