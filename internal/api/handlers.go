package api

import (
	"encoding/json"
	"net/http"

	"github.com/abhineethp/repostats/internal/cache"
	"github.com/abhineethp/repostats/internal/contrib"
)

type errorResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("repostats: contributor statistics for " + s.cfg.RepoOwner + "/" + s.cfg.RepoName))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.pinger.HealthCheck(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleContributors(w http.ResponseWriter, r *http.Request) {
	s.serveAggregate(w, r, cache.KindContributors, func(records []contrib.CommitRecord) any {
		return contrib.UniqueContributors(records)
	})
}

func (s *Server) handleTopContributors(w http.ResponseWriter, r *http.Request) {
	s.serveAggregate(w, r, cache.KindTopContributors, func(records []contrib.CommitRecord) any {
		return contrib.TopContributors(records)
	})
}

// serveAggregate runs the shared read-through pipeline: validate the window,
// serve a cached payload verbatim on hit, otherwise fetch, aggregate, store
// best-effort, and serve the freshly computed aggregate.
func (s *Server) serveAggregate(w http.ResponseWriter, r *http.Request, kind cache.Kind, aggregate func([]contrib.CommitRecord) any) {
	sinceRaw := queryParam(r, "since", "start", s.cfg.DefaultSince)
	untilRaw := queryParam(r, "until", "end", s.cfg.DefaultUntil)

	window, err := contrib.ParseWindow(sinceRaw, untilRaw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid date range"})
		return
	}

	ctx := r.Context()
	key := cache.Key(kind, window)
	if payload, ok := s.store.Get(ctx, key); ok {
		writeRawJSON(w, http.StatusOK, payload)
		return
	}

	records, err := s.fetcher.ListCommits(ctx, window)
	if err != nil {
		s.logger.Error("upstream fetch failed", "key", key, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
		return
	}

	payload, err := json.Marshal(aggregate(records))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
		return
	}

	s.store.Set(ctx, key, payload, s.cfg.CacheTTL)
	writeRawJSON(w, http.StatusOK, payload)
}

// queryParam reads the canonical parameter, falling back to its deployment
// alias and then to the configured default.
func queryParam(r *http.Request, name, alias, defaultValue string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	if v := r.URL.Query().Get(alias); v != "" {
		return v
	}
	return defaultValue
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeRawJSON sends pre-marshaled JSON without re-encoding, so cached
// payloads are served byte-identical to the first response.
func writeRawJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(payload)
}
