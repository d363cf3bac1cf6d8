// Package http exposes the rental shop over a JSON REST API. Routes
// other than /health and /login require a clerk bearer token.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"mrs-backend/internal/config"
	"mrs-backend/internal/security"
	"mrs-backend/internal/service"
)

// Server wires the service layer to HTTP routes.
type Server struct {
	httpServer *http.Server
	router     *mux.Router

	movies  service.MovieService
	users   service.UserService
	rentals service.RentalService
	stock   service.StockService

	tokens security.TokenManager
	auth   config.AuthConfig
	expiry int
}

func NewServer(
	cfg *config.Config,
	movies service.MovieService,
	users service.UserService,
	rentals service.RentalService,
	stock service.StockService,
	tokens security.TokenManager,
) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		movies:  movies,
		users:   users,
		rentals: rentals,
		stock:   stock,
		tokens:  tokens,
		auth:    cfg.Auth,
		expiry:  cfg.JWT.AccessTokenExpiry,
	}
	s.registerRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.router.Use(loggingMiddleware)

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)

	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.Use(authMiddleware(s.tokens))

	api.HandleFunc("/movies", s.handleListMovies).Methods(http.MethodGet)
	api.HandleFunc("/movies", s.handleCreateMovie).Methods(http.MethodPost)
	api.HandleFunc("/movies/{id}", s.handleGetMovie).Methods(http.MethodGet)
	api.HandleFunc("/movies/{id}", s.handleUpdateMovie).Methods(http.MethodPut)
	api.HandleFunc("/movies/{id}", s.handleDeleteMovie).Methods(http.MethodDelete)

	api.HandleFunc("/movies/{id}/stock", s.handleGetStock).Methods(http.MethodGet)
	api.HandleFunc("/movies/{id}/stock", s.handleAddCopy).Methods(http.MethodPost)
	api.HandleFunc("/movies/{id}/stock", s.handleRemoveCopy).Methods(http.MethodDelete)

	api.HandleFunc("/users", s.handleListUsers).Methods(http.MethodGet)
	api.HandleFunc("/users", s.handleCreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", s.handleGetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", s.handleUpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", s.handleDeleteUser).Methods(http.MethodDelete)
	api.HandleFunc("/users/{id}/statement", s.handleGetStatement).Methods(http.MethodGet)

	api.HandleFunc("/rentals", s.handleListRentals).Methods(http.MethodGet)
	api.HandleFunc("/rentals", s.handleCreateRental).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}", s.handleGetRental).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", s.handleDeleteRental).Methods(http.MethodDelete)
}

// Handler returns the root handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
