package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// prodAPIURL is the fallback when APP_ENV=production and API_URL is unset.
const prodAPIURL = "https://api.bookloans.example.com"

func Load() App {
	_ = godotenv.Load()

	cfg := App{
		Port:         getenv("APP_PORT", "8080"),
		APIBaseURL:   resolveAPIURL(),
		PollInterval: getduration("NOTIFY_POLL_INTERVAL", 5*time.Minute),
		Env:          getenv("APP_ENV", "dev"),
	}
	return cfg
}

// resolveAPIURL mirrors the getApiUrl convention: an explicit API_URL always
// wins; production falls back to the hardcoded URL; dev talks to the local
// API proxy.
func resolveAPIURL() string {
	if v := os.Getenv("API_URL"); v != "" {
		return v
	}
	if os.Getenv("APP_ENV") == "production" {
		return prodAPIURL
	}
	return "http://localhost:8000"
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("bad duration env, using default", "key", k, "value", v)
		return def
	}
	return d
}
