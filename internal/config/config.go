package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Upstream presskit API configuration
	Upstream UpstreamConfig

	// Cache configuration
	Cache CacheConfig

	// CORS configuration
	CORS CORSConfig

	// Logging configuration
	Logging LoggingConfig

	// DefaultLang is used when a request names no supported language
	DefaultLang string

	// Env names the deployment environment (ENV), "production" by default
	Env string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port int
	Host string
}

// UpstreamConfig describes the presskit API this service reads from
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CacheConfig bounds the in-memory presskit cache. A zero TTL disables it.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads configuration from env files and environment variables
func Load() (*Config, error) {
	_ = godotenv.Load("config/local.env")
	_ = godotenv.Load()

	cfg := &Config{}

	if err := cfg.loadServer(); err != nil {
		return nil, fmt.Errorf("load server config: %w", err)
	}

	if err := cfg.loadUpstream(); err != nil {
		return nil, fmt.Errorf("load upstream config: %w", err)
	}

	if err := cfg.loadCache(); err != nil {
		return nil, fmt.Errorf("load cache config: %w", err)
	}

	cfg.Env = strings.ToLower(getEnvOrDefault("ENV", "production"))
	cfg.loadCORS()
	cfg.loadLogging()
	cfg.DefaultLang = strings.ToLower(getEnvOrDefault("DEFAULT_LANG", "en"))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadServer() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}
	c.Server.Port = port
	c.Server.Host = getEnvOrDefault("HOST", "0.0.0.0")
	return nil
}

func (c *Config) loadUpstream() error {
	c.Upstream.BaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("PRESSKIT_API_URL")), "/")

	timeout, err := time.ParseDuration(getEnvOrDefault("PRESSKIT_API_TIMEOUT", "10s"))
	if err != nil {
		return fmt.Errorf("invalid PRESSKIT_API_TIMEOUT: %w", err)
	}
	c.Upstream.Timeout = timeout
	return nil
}

func (c *Config) loadCache() error {
	size, err := strconv.Atoi(getEnvOrDefault("PRESSKIT_CACHE_SIZE", "256"))
	if err != nil {
		return fmt.Errorf("invalid PRESSKIT_CACHE_SIZE: %w", err)
	}
	c.Cache.Size = size

	ttl, err := time.ParseDuration(getEnvOrDefault("PRESSKIT_CACHE_TTL", "60s"))
	if err != nil {
		return fmt.Errorf("invalid PRESSKIT_CACHE_TTL: %w", err)
	}
	c.Cache.TTL = ttl
	return nil
}

func (c *Config) loadCORS() {
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default for local development
		c.CORS.AllowedOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}
		return
	}

	var origins []string
	for _, origin := range strings.Split(originsEnv, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	c.CORS.AllowedOrigins = origins
}

func (c *Config) loadLogging() {
	c.Logging.Level = getEnvOrDefault("LOG_LEVEL", "info")
	format := "json"
	if c.IsDevelopment() {
		format = "text"
	}
	c.Logging.Format = getEnvOrDefault("LOG_FORMAT", format)
}

// Validate checks that all required configuration is present and valid
func (c *Config) Validate() error {
	var errors []string

	if c.Upstream.BaseURL == "" {
		errors = append(errors, "PRESSKIT_API_URL is required")
	} else if u, err := url.Parse(c.Upstream.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errors = append(errors, "PRESSKIT_API_URL must be an absolute http(s) URL")
	}
	if c.Upstream.Timeout <= 0 {
		errors = append(errors, "PRESSKIT_API_TIMEOUT must be positive")
	}

	if c.Cache.TTL < 0 {
		errors = append(errors, "PRESSKIT_CACHE_TTL must not be negative")
	}
	if c.Cache.TTL > 0 && c.Cache.Size < 1 {
		errors = append(errors, "PRESSKIT_CACHE_SIZE must be at least 1 when caching is enabled")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errors = append(errors, "PORT must be between 1 and 65535")
	}

	validLangs := map[string]bool{"en": true, "es": true}
	if !validLangs[c.DefaultLang] {
		errors = append(errors, "DEFAULT_LANG must be one of: en, es")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		errors = append(errors, "LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		errors = append(errors, "LOG_FORMAT must be one of: json, text")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev"
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
