package api

import (
	"fmt"
	"os"
	"time"

	"github.com/FocuswithJustin/uddf/internal/fileguard"
)

// Defaults applied by Config.withDefaults.
const (
	DefaultPort         = 8080
	DefaultCacheTTL     = 10 * time.Minute
	DefaultCacheEntries = 256
	DefaultBurst        = 10
)

// Config holds server configuration.
type Config struct {
	Port              int
	Version           string        // reported by /health
	Root              string        // directory batch jobs may read from (empty = jobs disabled)
	Workers           int           // validation workers per job (0 = one per CPU)
	MaxBodyBytes      int64         // upload limit for /validate and /resolve
	CacheTTL          time.Duration // lifetime of cached validation reports
	CacheEntries      int
	RateLimitRequests int        // Requests per minute (0 = disabled)
	RateLimitBurst    int        // Burst size
	Auth              AuthConfig // Authentication configuration
	TLS               TLSConfig  // TLS configuration
	AllowedOrigins    []string   // CORS and WebSocket allowed origins (empty = allow all)
}

// TLSConfig holds TLS/HTTPS configuration.
type TLSConfig struct {
	Enabled  bool   // Enable HTTPS
	CertFile string // Path to TLS certificate file
	KeyFile  string // Path to TLS private key file
}

func (c Config) withDefaults() Config {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Version == "" {
		c.Version = "dev"
	}
	if c.MaxBodyBytes <= 0 || c.MaxBodyBytes > fileguard.MaxFileSize {
		c.MaxBodyBytes = fileguard.MaxFileSize
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = DefaultCacheTTL
	}
	if c.CacheEntries <= 0 {
		c.CacheEntries = DefaultCacheEntries
	}
	if c.RateLimitRequests > 0 && c.RateLimitBurst == 0 {
		c.RateLimitBurst = DefaultBurst
	}
	return c
}

// Validate checks the configuration before the server starts.
func (c Config) Validate() error {
	if err := ValidateAuthConfig(c.Auth); err != nil {
		return fmt.Errorf("invalid auth config: %w", err)
	}

	if c.TLS.Enabled {
		if c.TLS.CertFile == "" || c.TLS.KeyFile == "" {
			return fmt.Errorf("TLS enabled but cert or key file not specified")
		}
		if _, err := os.Stat(c.TLS.CertFile); err != nil {
			return fmt.Errorf("TLS cert file not found: %w", err)
		}
		if _, err := os.Stat(c.TLS.KeyFile); err != nil {
			return fmt.Errorf("TLS key file not found: %w", err)
		}
	}

	if c.Root != "" {
		info, err := os.Stat(c.Root)
		if err != nil {
			return fmt.Errorf("job root: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("job root %s is not a directory", c.Root)
		}
	}
	return nil
}
