package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/vignes"
	"github.com/aretw0/vignes/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Estimator defines the interface of the diffusion estimator used by the web layer.
type Estimator interface {
	Estimate(ctx context.Context, q domain.Query) (domain.Result, error)
	Explain(ctx context.Context, q domain.Query) (domain.Result, domain.Breakdown, error)
	Constants() domain.ModelConstants
}

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	Estimator Estimator
	Logger    *slog.Logger
	Metrics   http.Handler
	pages     *pages
	spec      *apiSpec
}

// Option configures the handler built by NewHandler.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics mounts h on GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// NewHandler creates the HTTP handler for the estimator.
// It fails only if the embedded templates or OpenAPI document are broken.
func NewHandler(est Estimator, opts ...Option) (http.Handler, error) {
	s := &Server{Estimator: est}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}

	var err error
	if s.pages, err = loadPages(); err != nil {
		return nil, err
	}
	if s.spec, err = loadSpec(); err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	// Web form
	r.Get("/", s.Home)
	r.Get("/calcul", s.CalculForm)
	r.Post("/calcul", s.CalculSubmit)
	r.Get("/result", s.Result)
	r.Get("/explain", s.Explain)

	// JSON API
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(enableCORS)
		r.Get("/estimate", s.GetEstimate)
		r.Get("/explain", s.GetExplain)
		r.Get("/constants", s.GetConstants)
	})

	r.Get("/openapi.yaml", s.GetSpec)
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})

	return r, nil
}

func enableCORS(next http.Handler) http.Handler {
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

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.Logger.DebugContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "vignes-http",
		"version":     strings.TrimSpace(vignes.Version),
		"api_version": s.spec.Version(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
