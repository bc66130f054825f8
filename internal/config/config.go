package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	App        AppConfig
	CORS       CORSConfig
	Processing ProcessingConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// ProcessingConfig drives the nightly attendance reprocess job.
type ProcessingConfig struct {
	// TimezoneOffsetMinutes follows the UTC = local + offset convention.
	TimezoneOffsetMinutes int
	// ReprocessDays is how many trailing local days the job recomputes.
	ReprocessDays int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hr_attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Processing configuration
	offsetMinutes, err := strconv.Atoi(getEnv("TIMEZONE_OFFSET_MINUTES", "-120"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE_OFFSET_MINUTES: %w", err)
	}
	reprocessDays, err := strconv.Atoi(getEnv("REPROCESS_DAYS", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPROCESS_DAYS: %w", err)
	}

	config.Processing = ProcessingConfig{
		TimezoneOffsetMinutes: offsetMinutes,
		ReprocessDays:         reprocessDays,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Processing.TimezoneOffsetMinutes < -18*60 || c.Processing.TimezoneOffsetMinutes > 18*60 {
		return fmt.Errorf("TIMEZONE_OFFSET_MINUTES must be between -1080 and 1080")
	}
	if c.Processing.ReprocessDays < 1 {
		return fmt.Errorf("REPROCESS_DAYS must be at least 1")
	}
	return nil
}

// DatabaseURL builds a pgx connection string.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User, c.Database.Password, c.Database.Host,
		c.Database.Port, c.Database.Name, c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	raw := getEnv(key, fallback)
	var values []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
