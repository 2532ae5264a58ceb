package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hirestack/crm/config"
	"github.com/hirestack/crm/internal/db"
	"github.com/hirestack/crm/internal/directory"
	"github.com/hirestack/crm/internal/handlers"
	"github.com/hirestack/crm/internal/services"
	"github.com/hirestack/crm/internal/store"
	"go.uber.org/zap"
)

// Server wraps an HTTP server, its router, and the database handle.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
}

// NewAccount constructs the account service: registration, login,
// JWT-gated candidate records, and the directory pass-through routes.
func NewAccount(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Server, error) {
	jwtSecret := strings.TrimSpace(cfg.JWTSecret)
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	candidateRepo := store.NewCandidateRepository(dbConn)

	userService := services.NewUserService(userRepo)
	candidateService := services.NewCandidateService(candidateRepo)

	directoryClient := directory.New(cfg.DirectoryBaseURL)
	authMiddleware := handlers.RequireAuth(jwtSecret)

	router := newRouter(logger)
	router.Get("/", handlers.Home)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/api", func(r chi.Router) {
		handlers.AuthRouter(r, userService, jwtSecret)
		handlers.ProxyRouter(r, directoryClient)
		r.Route("/candidate", func(r chi.Router) {
			handlers.CandidateRouter(r, candidateService, authMiddleware)
		})
	})

	return newServer(router, dbConn, cfg.AccountPort), nil
}

func newRouter(logger *zap.Logger) *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		RequestLogger(logger),
		middleware.Timeout(60*time.Second),
	)
	return router
}

func newServer(router *chi.Mux, dbConn *sql.DB, port int) *Server {
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
	}
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
