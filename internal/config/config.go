package config

import (
	"fmt"
	"os"
	"strconv"
)

// Backend modes selectable with BLOG_BACKEND.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

const (
	defaultPort       = 3000
	defaultBackend    = BackendFile
	defaultContentDir = "./content/posts"
	defaultDBPath     = "./blog.db"

	// devOrigin is always allowed so the local frontend can talk to
	// the API without configuration.
	devOrigin = "http://localhost:4321"
)

// Config carries everything read from the environment. It is built once
// at startup and passed by reference; nothing else reads env vars.
type Config struct {
	Port       int
	Backend    string
	ContentDir string
	DBPath     string

	// Domain is the production origin added to the CORS allow-list.
	Domain string
}

// Load builds the configuration from environment variables, falling
// back to development defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       defaultPort,
		Backend:    defaultBackend,
		ContentDir: defaultContentDir,
		DBPath:     defaultDBPath,
		Domain:     os.Getenv("DOMAIN"),
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Port = p
	}

	if backend := os.Getenv("BLOG_BACKEND"); backend != "" {
		if backend != BackendFile && backend != BackendSQLite {
			return nil, fmt.Errorf("invalid BLOG_BACKEND %q: must be %q or %q", backend, BackendFile, BackendSQLite)
		}
		cfg.Backend = backend
	}

	if dir := os.Getenv("CONTENT_DIR"); dir != "" {
		cfg.ContentDir = dir
	}

	if path := os.Getenv("SQLITE_DB_PATH"); path != "" {
		cfg.DBPath = path
	}

	return cfg, nil
}

// AllowedOrigins is the exact-match CORS allow-list: the fixed local
// development origin plus the configured production one.
func (c *Config) AllowedOrigins() []string {
	origins := []string{devOrigin}
	if c.Domain != "" {
		origins = append(origins, c.Domain)
	}
	return origins
}
