package config

import (
	"log/slog"
	"os"
	"time"

	"steam-gamedata/internal/scraper"
)

type Config struct {
	Port         string
	StoreBaseURL string
	APIBaseURL   string
	FetchTimeout time.Duration
}

// Load reads configuration from the environment, with defaults matching the
// reference deployment. Base URLs are overridable so tests and regional
// mirrors can point elsewhere.
func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	store := os.Getenv("STORE_BASE_URL")
	if store == "" {
		store = "https://store.steampowered.com"
	}
	api := os.Getenv("STEAM_API_BASE_URL")
	if api == "" {
		api = store
	}
	timeout := 15 * time.Second
	if v := os.Getenv("FETCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			timeout = d
		} else {
			slog.Warn("ignoring invalid FETCH_TIMEOUT", "value", v)
		}
	}

	cfg := Config{Port: port, StoreBaseURL: store, APIBaseURL: api, FetchTimeout: timeout}
	slog.Info("config loaded", "port", cfg.Port, "store", cfg.StoreBaseURL, "api", cfg.APIBaseURL, "fetch_timeout", cfg.FetchTimeout)
	return cfg
}

// Categories returns the reference category table against the configured
// storefront, in resolver scan order.
func (c Config) Categories() []scraper.Category {
	return []scraper.Category{
		{Tag: "all", URL: c.StoreBaseURL + "/search/?filter=topsellers"},
		{Tag: "strategy", URL: c.StoreBaseURL + "/search/?tags=9&filter=topsellers"},
		{Tag: "rpg", URL: c.StoreBaseURL + "/search/?tags=122&filter=topsellers"},
	}
}
