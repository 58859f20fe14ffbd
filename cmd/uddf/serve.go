package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FocuswithJustin/uddf/internal/api"
)

// ServeCmd starts the REST API server and runs until interrupted.
type ServeCmd struct {
	Port         int           `help:"HTTP server port" default:"8080" env:"UDDF_PORT"`
	Root         string        `help:"Directory batch jobs may read logbooks from (empty disables jobs)" type:"path" env:"UDDF_ROOT"`
	Workers      int           `help:"Validation workers per job (0 = one per CPU)" default:"0"`
	MaxBody      int64         `name:"max-body" help:"Upload limit in bytes (0 = 64 MiB)" default:"0"`
	CacheTTL     time.Duration `name:"cache-ttl" help:"Lifetime of cached validation reports" default:"10m"`
	CacheEntries int           `name:"cache-entries" help:"Maximum cached validation reports" default:"256"`
	APIKey       string        `name:"api-key" help:"Require this key in X-API-Key (at least 16 characters)" env:"UDDF_API_KEY"`
	RateLimit    int           `name:"rate-limit" help:"Requests per minute per client (0 disables)" default:"0"`
	Burst        int           `help:"Rate limit burst size" default:"10"`
	Origins      []string      `help:"Allowed CORS and WebSocket origins (default: any)"`
	TLSCert      string        `name:"tls-cert" help:"TLS certificate file" type:"path"`
	TLSKey       string        `name:"tls-key" help:"TLS private key file" type:"path"`
}

func (c *ServeCmd) config() api.Config {
	return api.Config{
		Port:              c.Port,
		Version:           version,
		Root:              c.Root,
		Workers:           c.Workers,
		MaxBodyBytes:      c.MaxBody,
		CacheTTL:          c.CacheTTL,
		CacheEntries:      c.CacheEntries,
		RateLimitRequests: c.RateLimit,
		RateLimitBurst:    c.Burst,
		Auth: api.AuthConfig{
			Enabled: c.APIKey != "",
			APIKey:  c.APIKey,
		},
		TLS: api.TLSConfig{
			Enabled:  c.TLSCert != "" || c.TLSKey != "",
			CertFile: c.TLSCert,
			KeyFile:  c.TLSKey,
		},
		AllowedOrigins: c.Origins,
	}
}

func (c *ServeCmd) Run(g *Globals) error {
	srv, err := api.NewServer(c.config())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.ListenAndServe(ctx)
}
