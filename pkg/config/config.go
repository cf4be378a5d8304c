package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Latency struct {
		Enabled bool `env:"LATENCY_ENABLED" env-default:"true" env-description:"simulate network round trips on every service call"`
	}
	Seed struct {
		Path string `env:"SEED_PATH" env-description:"yaml file replacing the embedded seed data"`
	}
	Feed struct {
		WorkerPoolSize int `env:"WORKER_POOL_SIZE" env-default:"8"`
	}
	RateLimit struct {
		Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"20"`
		Per      time.Duration `env:"RATE_LIMIT_PER" env-default:"1m"`
		Burst    int           `env:"RATE_LIMIT_BURST" env-default:"10"`
	}
	Stories struct {
		ReportInterval time.Duration `env:"STORIES_REPORT_INTERVAL" env-default:"10m"`
	}
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// New returns the process configuration, reading the environment once.
func New() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = Load()
	})
	return cfg, loadErr
}

// Load reads the configuration from the environment without caching it.
func Load() (*Config, error) {
	c := &Config{}
	if err := cleanenv.ReadEnv(c); err != nil {
		help, _ := cleanenv.GetDescription(c, nil)
		return nil, fmt.Errorf("failed to read configuration: %w\n%s", err, help)
	}
	if c.RateLimit.Requests <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.RateLimit.Requests)
	}
	if c.Feed.WorkerPoolSize <= 0 {
		return nil, fmt.Errorf("WORKER_POOL_SIZE must be positive, got %d", c.Feed.WorkerPoolSize)
	}
	return c, nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
