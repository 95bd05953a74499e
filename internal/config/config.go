package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	Port      string `env:"PORT" default:"3000"`
	AdminKey  string `env:"ADMIN_KEY"`
	AppEnv    string `env:"APP_ENV"`
	NodeEnv   string `env:"NODE_ENV"`
	DataDir   string `env:"DATA_DIR" default:"data"`
	StaticDir string `env:"STATIC_DIR" default:"public"`

	// Empty keeps portal tokens as plain base64 JSON.
	PortalTokenSecret string `env:"PORTAL_TOKEN_SECRET"`

	CORSOrigins string `env:"CORS_ORIGINS" default:"*"`
	GelfAddr    string `env:"GELF_ADDR"`
	LogLevel    string `env:"LOG_LEVEL" default:"info"`
	LogFormat   string `env:"LOG_FORMAT" default:"text"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 0 and 65535, got %q", cfg.Port)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Permissive reports whether the admin key check is bypassed.
// APP_ENV wins over NODE_ENV when both are set.
func (c *Config) Permissive() bool {
	mode := c.AppEnv
	if mode == "" {
		mode = c.NodeEnv
	}
	return mode == "development"
}

func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
