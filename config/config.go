/*
Package config loads server configuration from the environment.

PURPOSE:
  Reads settings from environment variables with sensible defaults so
  the binary runs with zero configuration in development. A .env file
  in the working directory is honored when present; command-line flags
  in cmd/server override whatever the environment produced.

VARIABLES:
  PORT          HTTP server port             (default 8080)
  DB_PATH       SQLite database path         (default credit.db)
  CORS_ORIGINS  Comma-separated origin list  (default localhost dev ports)
*/
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	Port        int
	DBPath      string
	CORSOrigins []string
}

// Load reads a .env file if one exists, then the environment.
func Load() (Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	cfg := Config{
		Port:   8080,
		DBPath: "credit.db",
		CORSOrigins: []string{
			"http://localhost:5173",
			"http://localhost:8080",
		},
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: PORT %q is not a number", v)
		}
		cfg.Port = p
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = cfg.CORSOrigins[:0]
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if c.DBPath == "" {
		return fmt.Errorf("config: database path is empty")
	}
	if len(c.CORSOrigins) == 0 {
		return fmt.Errorf("config: at least one CORS origin is required")
	}
	return nil
}
