package config

import "time"

type App struct {
	Port         string        `env:"APP_PORT" default:"8080"`
	APIBaseURL   string        `env:"API_URL"`
	PollInterval time.Duration `env:"NOTIFY_POLL_INTERVAL" default:"5m"`
	Env          string        `env:"APP_ENV" default:"dev"`
}
