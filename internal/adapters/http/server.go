// Package http serves the interactive sequence form and the JSON API.
package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nthterm/nthterm"
	"github.com/nthterm/nthterm/internal/export"
	"github.com/nthterm/nthterm/pkg/domain"
	"github.com/nthterm/nthterm/pkg/ports"
)

//go:embed openapi.yaml
var openapiSpec []byte

const sessionCookie = "nthterm_session"

// Generator defines the interface for the sequence engine core.
type Generator interface {
	Generate(ctx context.Context, p domain.Parameters) (*domain.Result, error)
	MaxTerms() int
}

// Server hosts the form page, the JSON API, and the download endpoint.
type Server struct {
	gen      Generator
	sessions ports.SessionStore
	defaults domain.Parameters
	metrics  http.Handler
	logger   *slog.Logger

	specOnce sync.Once
	spec     *openapi3.T
}

// HandlerOption configures the HTTP handler.
type HandlerOption func(*Server)

// WithSessionStore enables form pre-filling across visits.
func WithSessionStore(store ports.SessionStore) HandlerOption {
	return func(s *Server) {
		s.sessions = store
	}
}

// WithDefaults overrides the built-in form defaults.
func WithDefaults(p domain.Parameters) HandlerOption {
	return func(s *Server) {
		s.defaults = p
	}
}

// WithMetricsHandler mounts a metrics endpoint (typically promhttp) at /metrics.
func WithMetricsHandler(h http.Handler) HandlerOption {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the sequence engine.
func NewHandler(gen Generator, opts ...HandlerOption) http.Handler {
	server := &Server{
		gen:      gen,
		defaults: domain.DefaultParameters(domain.KindArithmetic),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()

	r.Get("/", server.GetForm)
	r.Get("/api/generate", server.GenerateQuery)
	r.Post("/api/generate", server.GenerateJSON)
	r.Get("/download", server.Download)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	if server.metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>nthterm API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GenerateJSON handles the POST /api/generate request.
func (s *Server) GenerateJSON(w http.ResponseWriter, r *http.Request) {
	var params domain.Parameters
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("GenerateJSON: Invalid request body", "err", err)
		return
	}

	kind, err := domain.ParseKind(string(params.Kind))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	params.Kind = kind

	s.respondResult(w, r, params)
}

// GenerateQuery handles the GET /api/generate request.
func (s *Server) GenerateQuery(w http.ResponseWriter, r *http.Request) {
	params, err := s.parseQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.respondResult(w, r, params)
}

func (s *Server) respondResult(w http.ResponseWriter, r *http.Request, params domain.Parameters) {
	res, err := s.gen.Generate(r.Context(), params)
	if err != nil {
		if errors.Is(err, domain.ErrTermCountRange) || errors.Is(err, domain.ErrUnknownKind) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "An error occurred while generating the sequence", http.StatusInternalServerError)
		s.logger.Error("Generate failed", "err", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.Error("Generate response encode failed", "err", err)
	}
}

// Download handles the GET /download request, serving the plain-text artifact.
func (s *Server) Download(w http.ResponseWriter, r *http.Request) {
	params, err := s.parseQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := s.gen.Generate(r.Context(), params)
	if err != nil {
		if errors.Is(err, domain.ErrTermCountRange) || errors.Is(err, domain.ErrUnknownKind) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "An error occurred while generating the sequence", http.StatusInternalServerError)
		s.logger.Error("Download failed", "err", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(params)))
	fmt.Fprint(w, export.Text(res))
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if spec := s.loadSpec(); spec != nil && spec.Info != nil {
		apiVersion = spec.Info.Version
	}

	resp := map[string]string{
		"app":         "nthterm-http",
		"version":     nthterm.Version,
		"api_version": apiVersion,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// loadSpec parses the embedded OpenAPI document once.
func (s *Server) loadSpec() *openapi3.T {
	s.specOnce.Do(func() {
		loader := openapi3.NewLoader()
		spec, err := loader.LoadFromData(openapiSpec)
		if err != nil {
			s.logger.Error("Failed to load OpenAPI spec", "err", err)
			return
		}
		s.spec = spec
	})
	return s.spec
}

// parseQuery reads generation parameters from query values, falling back to
// the configured defaults for absent keys. Non-numeric values are rejected;
// non-finite floats are not (they propagate through the formulas).
func (s *Server) parseQuery(q url.Values) (domain.Parameters, error) {
	params := s.defaults

	if v := q.Get("kind"); v != "" {
		kind, err := domain.ParseKind(v)
		if err != nil {
			return params, err
		}
		if kind != params.Kind {
			params.Kind = kind
			params.Step = kind.DefaultStep()
		}
	}
	if v := q.Get("first_term"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, fmt.Errorf("invalid first_term: %q", v)
		}
		params.FirstTerm = f
	}
	if v := q.Get("step"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, fmt.Errorf("invalid step: %q", v)
		}
		params.Step = f
	}
	if v := q.Get("term_count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, fmt.Errorf("invalid term_count: %q", v)
		}
		params.TermCount = n
	}
	return params, nil
}

// sessionID returns the visitor's session ID, minting a cookie when absent.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// loadSession fetches the visitor's stored session, if any.
func (s *Server) loadSession(ctx context.Context, id string) *domain.Session {
	if s.sessions == nil || id == "" {
		return nil
	}
	session, err := s.sessions.Load(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			s.logger.Warn("Session load failed", "err", err)
		}
		return nil
	}
	return session
}

// saveSession remembers the visitor's parameters. Failures only log; the
// response has already been decided.
func (s *Server) saveSession(ctx context.Context, id string, params domain.Parameters) {
	if s.sessions == nil || id == "" {
		return
	}
	err := s.sessions.Save(ctx, &domain.Session{
		ID:         id,
		Parameters: params,
		Generated:  true,
		UpdatedAt:  time.Now(),
	})
	if err != nil {
		s.logger.Warn("Session save failed", "err", err)
	}
}
