package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Content locations
	DocsDir       string
	ResumeFile    string
	OverridesFile string

	// Viewer sessions
	SessionTTL      time.Duration
	CleanupInterval time.Duration

	// Load limits
	MaxDocumentBytes int64

	// Logging
	LogLevel string
}

// Load reads configuration from the environment, after loading a .env
// file when one is present. Every setting has a usable default.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port: envOr("PORT", "8080"),

		DocsDir:       envOr("DOCS_DIR", "public/docs"),
		ResumeFile:    envOr("RESUME_FILE", "public/docs/resume.pdf"),
		OverridesFile: envOr("OVERRIDES_FILE", "public/content/overrides.json"),

		SessionTTL:      envDuration("SESSION_TTL", 30*time.Minute),
		CleanupInterval: envDuration("CLEANUP_INTERVAL", time.Minute),

		MaxDocumentBytes: envInt64("MAX_DOCUMENT_BYTES", 52428800), // 50MB

		LogLevel: envOr("LOG_LEVEL", "info"),
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = time.Minute
	}
	if cfg.MaxDocumentBytes <= 0 {
		cfg.MaxDocumentBytes = 52428800
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DocsDir == "" {
		return fmt.Errorf("DOCS_DIR is required")
	}
	if c.ResumeFile == "" {
		return fmt.Errorf("RESUME_FILE is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
