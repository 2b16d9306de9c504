package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/vidseo/backend/internal/logging"
)

// Config captures the runtime configuration for the vidseo backend service.
type Config struct {
	AppPort      int
	LogLevel     string
	FetchTimeout time.Duration
	UserAgent    string
	OpenAI       OpenAIConfig
	ObjectStore  ObjectStoreConfig
	GenerateRate RateLimitConfig
}

// OpenAIConfig configures the image generation client. Generation is disabled
// when APIKey is empty.
type OpenAIConfig struct {
	APIKey       string
	BaseURL      string
	ImageModel   string
	ImageQuality string
}

// ObjectStoreConfig points at the S3-compatible bucket rendered thumbnails are
// uploaded to. Uploads are disabled when Bucket is empty.
type ObjectStoreConfig struct {
	Bucket        string
	Region        string
	Endpoint      string
	PublicBaseURL string
}

// RateLimitConfig bounds how often a single client may call an endpoint.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
	Burst    int
}

// Load reads configuration from environment variables, applying sensible defaults
// for local development while allowing overrides through environment variables.
func Load() (Config, error) {
	cfg := Config{
		AppPort:      getInt("VIDSEO_PORT", 8080),
		LogLevel:     getString("VIDSEO_LOG_LEVEL", "info"),
		FetchTimeout: getDuration("VIDSEO_FETCH_TIMEOUT", 0),
		UserAgent:    getString("VIDSEO_USER_AGENT", ""),
		OpenAI: OpenAIConfig{
			APIKey:       getString("VIDSEO_OPENAI_API_KEY", ""),
			BaseURL:      getString("VIDSEO_OPENAI_BASE_URL", ""),
			ImageModel:   getString("VIDSEO_OPENAI_IMAGE_MODEL", "dall-e-3"),
			ImageQuality: getString("VIDSEO_OPENAI_IMAGE_QUALITY", "standard"),
		},
		ObjectStore: ObjectStoreConfig{
			Bucket:        getString("VIDSEO_S3_BUCKET", ""),
			Region:        getString("VIDSEO_S3_REGION", "us-east-1"),
			Endpoint:      getString("VIDSEO_S3_ENDPOINT", ""),
			PublicBaseURL: getString("VIDSEO_S3_PUBLIC_BASE_URL", ""),
		},
		GenerateRate: RateLimitConfig{
			Requests: getInt("VIDSEO_GENERATE_RATE_REQUESTS", 5),
			Window:   getDuration("VIDSEO_GENERATE_RATE_WINDOW", time.Minute),
			Burst:    getInt("VIDSEO_GENERATE_RATE_BURST", 2),
		},
	}

	if cfg.AppPort <= 0 || cfg.AppPort > 65535 {
		return Config{}, fmt.Errorf("config: VIDSEO_PORT %d out of range", cfg.AppPort)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.FetchTimeout < 0 {
		cfg.FetchTimeout = 0
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return i
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
