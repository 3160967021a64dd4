package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"forgeyourday/internal/storage"
)

type Config struct {
	DBPath       string        `env:"FYD_DB_PATH"`
	ImageTimeout time.Duration `env:"FYD_IMAGE_TIMEOUT" env-default:"10s"`
}

// Load reads configuration from the environment. DBPath defaults to the
// per-user database location.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	if cfg.DBPath == "" {
		path, err := storage.DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = path
	}
	return cfg, nil
}
