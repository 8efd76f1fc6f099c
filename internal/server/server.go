// Package server wires the router, middleware, and dependency graph, and
// owns startup/shutdown.
//
// COMPOSITION ROOT:
// New assembles the whole chain in one place:
//
//	sqlite.DB → repositories → services → handlers → routes
//
// The store handle is constructed here and passed down explicitly — there is
// no package-level database state anywhere, and Start closes the database on
// the way out.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/gamepad-api/internal/auth"
	"github.com/sakif/gamepad-api/internal/handler"
	"github.com/sakif/gamepad-api/internal/middleware"
	sqliteRepo "github.com/sakif/gamepad-api/internal/repository/sqlite"
	"github.com/sakif/gamepad-api/internal/service"
)

// Config holds server configuration, loaded in cmd/server/main.go.
type Config struct {
	Port   int
	DBPath string // path to the SQLite database file, ":memory:" for tests
}

// Server is the HTTP server and the dependencies it owns.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB // owned by the server, closed on shutdown
}

// New creates a Server: opens the database, builds the service graph, and
// registers all routes.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	s.setupRoutes()
	return s, nil
}

// setupRoutes configures middleware and the route table.
//
// ROUTE TABLE:
//
//	POST /signup          → create account, issue token        (public)
//	POST /login           → verify credentials, return token   (public)
//	POST /favorite        → save a game                        (bearer)
//	GET  /favoritesOfUser → list caller's favorites            (bearer)
//	POST /deleteFav       → remove a favorite by title         (bearer)
//	POST /review          → write a review                     (bearer)
//	GET  /reviews         → list reviews for a game            (public)
//	*    anything else    → 200 generic message                (public)
func (s *Server) setupRoutes() {
	// Global middleware, in order: request ID for tracing, real client IP
	// behind proxies, panic recovery, then our request logger.
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	// Repositories — all backed by the one database the server owns.
	users := s.db.Users()
	favorites := s.db.Favorites()
	reviews := s.db.Reviews()

	// Services and handlers.
	accountService := service.NewAccountService(users, auth.NewPasswordService(), s.logger)
	favoriteService := service.NewFavoriteService(favorites, s.logger)
	reviewService := service.NewReviewService(reviews, s.logger)

	accountHandler := handler.NewAccountHandler(accountService, s.logger)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService, s.logger)
	reviewHandler := handler.NewReviewHandler(reviewService, s.logger)

	// Public routes.
	s.router.Post("/signup", accountHandler.HandleSignup)
	s.router.Post("/login", accountHandler.HandleLogin)
	s.router.Get("/reviews", reviewHandler.HandleListForGame)

	// Protected routes — RequireAuth resolves the bearer token to a user
	// (or ends the request with 401) before any handler runs.
	s.router.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(users))
		r.Post("/favorite", favoriteHandler.HandleAdd)
		r.Get("/favoritesOfUser", favoriteHandler.HandleList)
		r.Post("/deleteFav", favoriteHandler.HandleDelete)
		r.Post("/review", reviewHandler.HandleAdd)
	})

	// Catch-all: any other path answers 200 with a generic message.
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"all routes"}`))
	})
}

// Handler exposes the router, mainly for httptest-based tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the server's resources without serving. Start does this
// itself; Close exists for callers (tests) that never call Start.
func (s *Server) Close() error {
	return s.db.Close()
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, give in-flight requests 30s, and
// close the database (flushing the WAL).
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
