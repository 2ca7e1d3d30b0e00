package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"dexScope/internal/query"
	"dexScope/internal/subgraph"
)

// Server exposes the pool query pipeline over HTTP.
type Server struct {
	pipeline *query.Pipeline
	router   *mux.Router
	addr     string
	logger   *zap.Logger
}

// NewServer builds a Server listening on addr.
func NewServer(addr string, pipeline *query.Pipeline, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		pipeline: pipeline,
		router:   mux.NewRouter(),
		addr:     addr,
		logger:   logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// OPTIONS is listed so preflights reach the CORS middleware instead
	// of mux's method-mismatch handler.
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet, http.MethodOptions)
	s.router.HandleFunc("/v1/evm/pools", s.handlePools).Methods(http.MethodGet, http.MethodOptions)

	s.router.Use(s.corsMiddleware)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.recoverMiddleware)
}

// Handler returns the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info("shutting down http server")
	return server.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePools(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	params := query.Params{
		Network:     values.Get("network"),
		Protocol:    values.Get("protocol"),
		Factory:     values.Get("factory"),
		Pool:        values.Get("pool"),
		InputToken:  values.Get("input_token"),
		OutputToken: values.Get("output_token"),
		Page:        values.Get("page"),
		Limit:       values.Get("limit"),
	}

	page, err := s.pipeline.Run(r.Context(), params)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, page)
}

// writeError maps pipeline failures onto the wire contract: validation
// failures are 400 with a single error field, everything else is 500
// with a generic error plus the underlying message.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var validationErr *query.ValidationError
	if errors.As(err, &validationErr) {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": validationErr.Message})
		return
	}

	var fetchErr *subgraph.FetchError
	if errors.As(err, &fetchErr) {
		s.logger.Error("upstream fetch failed", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "failed to fetch dex data",
			"message": fetchErr.Err.Error(),
		})
		return
	}

	s.logger.Error("unexpected error", zap.Error(err))
	s.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "internal server error",
		"message": err.Error(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		s.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", wrapper.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// recoverMiddleware converts panics during filtering or formatting into
// the 500 contract instead of letting the transport layer reply raw.
func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("handler panic", zap.Any("panic", rec), zap.String("path", r.URL.Path))
				s.writeJSON(w, http.StatusInternalServerError, map[string]string{
					"error":   "internal server error",
					"message": fmt.Sprintf("%v", rec),
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
