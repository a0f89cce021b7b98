package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned by Load when no Gemini credential is configured
var ErrMissingAPIKey = errors.New("gemini API key is missing: set SPRAWL_LENS_GEMINI_APIKEY or GOOGLE_API_KEY")

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	App      AppConfig
	Gemini   GeminiConfig
	Geocoder GeocoderConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	DefaultLocation string        // Location analysed when none is given
	Region          string        // Region the analyst and assistant personas cover
	QueryTimeout    time.Duration // Upper bound for one dashboard fetch
	SessionTTL      time.Duration // Idle time before a dashboard session is dropped
}

// GeminiConfig holds the generative model settings
type GeminiConfig struct {
	APIKey    string
	Model     string // Model for the structured population query
	ChatModel string // Model for the assistant
}

// GeocoderConfig holds the place search settings
type GeocoderConfig struct {
	BaseURL   string
	UserAgent string
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.sprawl-lens")

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.defaultLocation", "Greater Toronto Area")
	v.SetDefault("app.region", "Greater Toronto Area")
	v.SetDefault("app.queryTimeout", 90*time.Second)
	v.SetDefault("app.sessionTTL", 30*time.Minute)
	v.SetDefault("gemini.model", "gemini-2.5-pro")
	v.SetDefault("gemini.chatModel", "gemini-2.5-pro")
	v.SetDefault("geocoder.baseURL", "https://nominatim.openstreetmap.org/search")
	v.SetDefault("geocoder.userAgent", "sprawl-lens/1.0")

	// Read from environment variables
	v.SetEnvPrefix("SPRAWL_LENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credential is also accepted under the names Google tooling uses
	if err := v.BindEnv("gemini.apikey", "SPRAWL_LENS_GEMINI_APIKEY", "GOOGLE_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api key env: %w", err)
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings the application cannot start without
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if strings.TrimSpace(c.App.DefaultLocation) == "" {
		return errors.New("app.defaultLocation must not be empty")
	}
	if c.App.QueryTimeout <= 0 {
		return fmt.Errorf("app.queryTimeout must be positive, got %s", c.App.QueryTimeout)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
