package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the application configuration from the environment, optionally
// seeding it from a .env file first.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	path := ".env"
	if len(envFilePath) > 0 {
		path = envFilePath[0]
	}
	if err := godotenv.Load(path); err != nil {
		logger.Warn("No .env file found, using system environment variables", "path", path)
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Info("App config loaded",
		"env", cfg.Env,
		"db", maskValue(cfg.DB.Url),
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"migrations_dir", cfg.Migrations.Dir,
	)
	return &cfg, nil
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
