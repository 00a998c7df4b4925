package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/abhineethp/repostats/internal/cache"
	"github.com/abhineethp/repostats/internal/config"
	"github.com/abhineethp/repostats/internal/github"
)

// Pinger reports whether the cache backing store is reachable.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Server composes validation, cache, fetcher, and aggregation into the HTTP
// surface. It holds no per-request state; the cache backing store is the only
// thing shared across concurrent requests.
type Server struct {
	cfg     *config.Config
	store   cache.Store
	pinger  Pinger
	fetcher github.Fetcher
	logger  *slog.Logger
}

// NewServer wires the request handlers to their collaborators.
func NewServer(cfg *config.Config, store cache.Store, pinger Pinger, fetcher github.Fetcher) *Server {
	return &Server{
		cfg:     cfg,
		store:   store,
		pinger:  pinger,
		fetcher: fetcher,
		logger:  slog.Default().With("component", "api"),
	}
}

// Router builds the route table.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/users", s.handleContributors).Methods(http.MethodGet)
	r.HandleFunc("/most-frequent", s.handleTopContributors).Methods(http.MethodGet)
	return r
}
