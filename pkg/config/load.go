// Package config loads the application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment. When a .env file exists in
// the working directory it is loaded first; missing files are not an error.
func Load() (*App, error) {
	logger := slog.Default()
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system environment variables")
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Info("App config loaded",
		"env", cfg.Env,
		"db", maskValue(cfg.DB.Url),
		"customer_api_url", cfg.Customer.ApiUrl,
		"customer_http_timeout", cfg.Customer.HTTPTimeout,
	)
	return &cfg, nil
}

func maskValue(v string) string {
	if len(v) <= 6 {
		return "****"
	}
	return v[:3] + "****" + v[len(v)-3:]
}
