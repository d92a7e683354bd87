// Package config loads runtime settings from .env files and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvPort        = "POLYPROPS_PORT"
	EnvMetricsPath = "POLYPROPS_METRICS_PATH"
	EnvLogLevel    = "POLYPROPS_LOG_LEVEL"
	EnvLogFormat   = "POLYPROPS_LOG_FORMAT"
)

// Config holds settings shared by the CLI and the server.
type Config struct {
	Port        int
	MetricsPath string
	LogLevel    string
	LogFormat   string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:        3000,
		MetricsPath: "/metrics",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load reads the given .env files (missing files are skipped) and then
// applies environment variables over the defaults. Variables already set
// in the environment win over .env values.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv applies variables found by lookup over the defaults.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("%s: invalid port %q", EnvPort, v)
		}
		cfg.Port = port
	}
	if v, ok := lookup(EnvMetricsPath); ok && v != "" {
		if !strings.HasPrefix(v, "/") || strings.ContainsAny(v, " \t{}") {
			return Config{}, fmt.Errorf("%s: invalid path %q", EnvMetricsPath, v)
		}
		cfg.MetricsPath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.LogFormat = v
	}
	return cfg, nil
}
