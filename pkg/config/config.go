// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration for the news source, queries, API server and logging

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"newsgrid/pkg/utils/duration"
	"newsgrid/pkg/utils/parse"
)

// Config holds all application configuration
type Config struct {
	// NewsAPI contains the upstream news service configuration
	NewsAPI NewsAPIConfig

	// News contains the two queries and display settings
	News NewsConfig

	// Server contains companion API configuration
	Server ServerConfig

	// Log contains logging configuration
	Log LogConfig
}

// NewsAPIConfig holds upstream service configuration
type NewsAPIConfig struct {
	// APIKey is sent in the X-Api-Key header. Never logged.
	APIKey string

	// Endpoint is the search endpoint URL
	Endpoint string

	// Timeout bounds each request; zero means no client-side timeout
	Timeout time.Duration
}

// NewsConfig holds query and presentation configuration
type NewsConfig struct {
	PageSize         int
	RegionalQuery    string
	RegionalLanguage string
	DefaultQuery     string
	DefaultLanguage  string

	// Timezone is an IANA name for publish dates; empty means local time
	Timezone string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the sustained requests per second allowed per client IP
	RateLimit float64

	// RateBurst is the token bucket size per client IP
	RateBurst int

	// TrustProxy honors X-Forwarded-For/X-Real-IP; enable only behind a reverse proxy
	TrustProxy bool

	// SessionTTL is how long an idle browsing session is kept
	SessionTTL time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string

	// File is where the terminal client writes its rotating log
	File string
}

// LoadDotEnv loads variables from the given files (default ".env") without
// overriding the existing environment. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	timeout, err := getEnvAsDurationOrDefault("NEWSAPI_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}
	sessionTTL, err := getEnvAsDurationOrDefault("SESSION_TTL", 30*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		NewsAPI: NewsAPIConfig{
			APIKey:   strings.TrimSpace(os.Getenv("NEWSAPI_KEY")),
			Endpoint: getEnvOrDefault("NEWSAPI_ENDPOINT", "https://newsapi.org/v2/everything"),
			Timeout:  timeout,
		},
		News: NewsConfig{
			PageSize:         getEnvAsIntOrDefault("NEWS_PAGE_SIZE", 6),
			RegionalQuery:    getEnvOrDefault("NEWS_REGIONAL_QUERY", "india"),
			RegionalLanguage: getEnvOrDefault("NEWS_REGIONAL_LANGUAGE", "hi"),
			DefaultQuery:     getEnvOrDefault("NEWS_DEFAULT_QUERY", "india sports cricket hockey"),
			DefaultLanguage:  getEnvOrDefault("NEWS_DEFAULT_LANGUAGE", "en"),
			Timezone:         getEnvOrDefault("NEWS_TIMEZONE", ""),
		},
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8000"),
			RateLimit:  getEnvAsFloatOrDefault("RATE_LIMIT", 5),
			RateBurst:  getEnvAsIntOrDefault("RATE_BURST", 10),
			TrustProxy: getEnvAsBoolOrDefault("TRUST_PROXY", false),
			SessionTTL: sessionTTL,
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("NEWSGRID_LOG_FILE", "newsgrid.log"),
		},
	}

	return cfg, nil
}

// Location resolves News.Timezone; empty means time.Local
func (c *Config) Location() (*time.Location, error) {
	if c.News.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.News.Timezone)
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	return parse.IntOr(os.Getenv(key), defaultValue)
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	return parse.FloatOr(os.Getenv(key), defaultValue)
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault parses a duration variable. A malformed value is
// an error rather than a silent default.
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := duration.Parse(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.NewsAPI.APIKey == "" {
		return errors.New("NEWSAPI_KEY must be set")
	}

	u, err := url.Parse(c.NewsAPI.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("news endpoint must be an absolute URL")
	}

	if c.News.PageSize < 1 || c.News.PageSize > 100 {
		return errors.New("page size must be between 1 and 100")
	}

	if c.News.RegionalQuery == "" || c.News.DefaultQuery == "" {
		return errors.New("queries cannot be empty")
	}

	if c.News.Timezone != "" {
		if _, err := time.LoadLocation(c.News.Timezone); err != nil {
			return fmt.Errorf("unknown timezone %q", c.News.Timezone)
		}
	}

	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit <= 0 || c.Server.RateBurst < 1 {
		return errors.New("rate limit and burst must be positive")
	}

	if c.Server.SessionTTL < time.Second {
		return errors.New("session ttl must be at least 1 second")
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
