// Package config resolves server configuration from defaults, an optional
// TOML file, and environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Addr           string   `toml:"addr"`
	DBPath         string   `toml:"db_path"`
	LogLevel       string   `toml:"log_level"`
	CORSOrigins    []string `toml:"cors_origins"`
	SolveTimeoutMs int      `toml:"solve_timeout_ms"`
	RateLimitRPS   float64  `toml:"rate_limit_rps"`
	RateLimitBurst int      `toml:"rate_limit_burst"`
}

func Default() Config {
	return Config{
		Addr:           ":8080",
		DBPath:         "./data/puzzles.db",
		LogLevel:       "info",
		CORSOrigins:    []string{"http://localhost:3000"},
		SolveTimeoutMs: 10_000,
		RateLimitRPS:   5,
		RateLimitBurst: 10,
	}
}

// Load builds the effective configuration. path may be empty, meaning no
// config file; a named file that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file: %w", err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SUDOKU_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("SUDOKU_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("SUDOKU_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("SUDOKU_CORS_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := parts[:0]
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		c.CORSOrigins = origins
	}
	if v := os.Getenv("SUDOKU_SOLVE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.SolveTimeoutMs = n
		}
	}
}

// SolveTimeout returns the per-request solve deadline; zero disables it.
func (c Config) SolveTimeout() time.Duration {
	if c.SolveTimeoutMs <= 0 {
		return 0
	}
	return time.Duration(c.SolveTimeoutMs) * time.Millisecond
}
