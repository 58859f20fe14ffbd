// Package api provides the UDDF validation REST API server.
//
// Endpoints:
//
//	GET    /health     liveness and counters (no authentication)
//	POST   /validate   validate the uploaded logbook
//	POST   /resolve    list identifiers and dangling references
//	POST   /jobs       validate files under the configured root in the background
//	GET    /jobs       list jobs
//	GET    /jobs/{id}  job status and reports
//	DELETE /jobs/{id}  cancel a running job or forget a finished one
//	GET    /ws         job progress stream
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/FocuswithJustin/uddf/internal/cache"
	"github.com/FocuswithJustin/uddf/internal/logging"
)

const shutdownTimeout = 10 * time.Second

// Server serves the API. Create it with NewServer.
type Server struct {
	cfg     Config
	hub     *Hub
	jobs    *JobStore
	reports *cache.TTLCache[string, ValidateResponse]
	limiter *RateLimiter
	started time.Time
	handler http.Handler
}

// NewServer validates cfg, fills in defaults and builds the handler chain.
// The WebSocket hub only runs inside ListenAndServe.
func NewServer(cfg Config) (*Server, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     cfg,
		hub:     NewHub(),
		jobs:    NewJobStore(),
		reports: cache.New[string, ValidateResponse](cfg.CacheTTL, cfg.CacheEntries),
		started: time.Now(),
	}
	if cfg.RateLimitRequests > 0 {
		s.limiter = NewRateLimiter(RateLimiterConfig{
			RequestsPerMinute: cfg.RateLimitRequests,
			BurstSize:         cfg.RateLimitBurst,
		})
	}
	s.handler = s.buildHandler()
	return s, nil
}

// Handler returns the full middleware chain around the routes.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /validate", s.handleValidate)
	mux.HandleFunc("POST /resolve", s.handleResolve)
	mux.HandleFunc("POST /jobs", s.handleCreateJob)
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	mux.HandleFunc("DELETE /jobs/{id}", s.handleDeleteJob)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	return mux
}

func (s *Server) buildHandler() http.Handler {
	var handler http.Handler = SecurityHeadersMiddleware(s.routes())

	if s.cfg.Auth.Enabled {
		handler = AuthMiddleware(s.cfg.Auth, handler)
		logging.SecurityEvent("authentication_configured", "api",
			"enabled", true,
			"note", "API key required")
	} else {
		logging.SecurityEvent("authentication_configured", "api",
			"enabled", false,
			"note", "all requests allowed")
	}

	if s.limiter != nil {
		handler = s.limiter.Middleware(handler)
		logging.Info("rate limiting enabled",
			"requests_per_minute", s.cfg.RateLimitRequests,
			"burst_size", s.cfg.RateLimitBurst)
	}

	handler = CORSMiddleware(s.cfg.AllowedOrigins, handler)
	if len(s.cfg.AllowedOrigins) > 0 {
		logging.SecurityEvent("cors_configured", "api",
			"mode", "restricted",
			"allowed_origins_count", len(s.cfg.AllowedOrigins))
	}

	return logging.CombinedMiddleware(handler)
}

// ListenAndServe runs the server until ctx is done, then shuts down
// gracefully, cancelling running jobs.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.Close()

	go s.hub.Run(ctx)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	protocol := "http"
	if s.cfg.TLS.Enabled {
		protocol = "https"
		logging.Info("TLS enabled", "cert_file", s.cfg.TLS.CertFile)
	} else {
		logging.Warn("TLS disabled - using plain HTTP",
			"recommendation", "consider using TLS or reverse proxy for production")
	}

	errCh := make(chan error, 1)
	go func() {
		if s.cfg.TLS.Enabled {
			errCh <- srv.ListenAndServeTLS(s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile)
		} else {
			errCh <- srv.ListenAndServe()
		}
	}()
	logging.ServerStartup("rest_api", protocol, s.cfg.Port,
		"jobs_root", s.cfg.Root,
		"version", s.cfg.Version)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.Info("shutting down", "timeout", shutdownTimeout)
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	return srv.Shutdown(shutdownCtx)
}

// Close cancels running jobs and stops background goroutines.
func (s *Server) Close() {
	s.jobs.CancelAll()
	if s.limiter != nil {
		s.limiter.Stop()
	}
}
