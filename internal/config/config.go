// Package config reads runtime settings from the environment, loading a .env
// file first when one is present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	LogLevel       string
	LogFormat      string
	SeedPath       string
	CurrentUserID  string
	WriteLimit     int
	AllowedOrigins []string
	TrustProxy     bool
}

func defaults() Config {
	return Config{
		Port:       "8080",
		LogLevel:   "info",
		LogFormat:  "text",
		WriteLimit: 120,
	}
}

// Load reads .env (if present) and the CHORECHART_* variables. Variables
// already set in the environment win over .env entries.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := defaults()

	if v := getenv("CHORECHART_PORT"); v != "" {
		cfg.Port = v
	}
	if v := getenv("CHORECHART_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("CHORECHART_LOG_FORMAT"); v != "" {
		switch strings.ToLower(v) {
		case "text", "json":
			cfg.LogFormat = strings.ToLower(v)
		default:
			return Config{}, fmt.Errorf("CHORECHART_LOG_FORMAT: unknown format %q", v)
		}
	}
	cfg.SeedPath = getenv("CHORECHART_SEED_PATH")
	cfg.CurrentUserID = getenv("CHORECHART_CURRENT_USER")

	if v := getenv("CHORECHART_WRITE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("CHORECHART_WRITE_LIMIT: want a positive integer, got %q", v)
		}
		cfg.WriteLimit = n
	}

	if v := getenv("CHORECHART_TRUST_PROXY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("CHORECHART_TRUST_PROXY: want a boolean, got %q", v)
		}
		cfg.TrustProxy = b
	}

	if v := getenv("CHORECHART_ALLOWED_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}
