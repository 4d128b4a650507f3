package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerHost         string
	ServerPort         string
	CORSAllowedOrigins []string

	// Logging
	LogLevel  string
	LogFormat string

	// Recipe catalog
	CatalogSource string
	CatalogPath   string
	DatabaseURL   string
	MigrationsDir string

	// Redis configuration
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Ingredient detection
	ClarifaiAPIKey         string
	ClarifaiAPIURL         string
	DetectionTimeout       time.Duration
	DetectionMinConfidence float64
	DetectRateLimit        int

	// Upload archive
	S3BucketName string
	AWSRegion    string
}

const DefaultClarifaiURL = "https://api.clarifai.com/v2/models/food-item-recognition/outputs"

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", string(Development))
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CATALOG_SOURCE", "embedded")
	v.SetDefault("MIGRATIONS_DIR", "migrations")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CLARIFAI_API_URL", DefaultClarifaiURL)
	v.SetDefault("DETECTION_TIMEOUT", "10s")
	v.SetDefault("DETECTION_MIN_CONFIDENCE", 0.7)
	v.SetDefault("DETECT_RATE_LIMIT", 30)
	v.SetDefault("AWS_REGION", "us-east-1")
}

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables always win over it.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}
	return Load(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load builds a Config from an already prepared viper instance and validates it
func Load(v *viper.Viper) (*Config, error) {
	env, err := ParseEnvironment(v.GetString("ENV"))
	if err != nil {
		return nil, err
	}
	if v.GetString("CI") == "true" {
		env = CI
	}

	cfg := &Config{
		Environment:            env,
		ServerHost:             v.GetString("SERVER_HOST"),
		ServerPort:             v.GetString("SERVER_PORT"),
		CORSAllowedOrigins:     splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		LogLevel:               strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:              strings.ToLower(v.GetString("LOG_FORMAT")),
		CatalogSource:          strings.ToLower(v.GetString("CATALOG_SOURCE")),
		CatalogPath:            v.GetString("CATALOG_PATH"),
		DatabaseURL:            v.GetString("DATABASE_URL"),
		MigrationsDir:          v.GetString("MIGRATIONS_DIR"),
		RedisURL:               v.GetString("REDIS_URL"),
		RedisHost:              v.GetString("REDIS_HOST"),
		RedisPort:              v.GetString("REDIS_PORT"),
		RedisPassword:          v.GetString("REDIS_PASSWORD"),
		RedisDB:                v.GetInt("REDIS_DB"),
		ClarifaiAPIKey:         v.GetString("CLARIFAI_API_KEY"),
		ClarifaiAPIURL:         v.GetString("CLARIFAI_API_URL"),
		DetectionTimeout:       v.GetDuration("DETECTION_TIMEOUT"),
		DetectionMinConfidence: v.GetFloat64("DETECTION_MIN_CONFIDENCE"),
		DetectRateLimit:        v.GetInt("DETECT_RATE_LIMIT"),
		S3BucketName:           v.GetString("S3_BUCKET_NAME"),
		AWSRegion:              v.GetString("AWS_REGION"),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Address is the host:port the HTTP server listens on
func (c *Config) Address() string {
	return net.JoinHostPort(c.ServerHost, c.ServerPort)
}

// RedisEnabled reports whether a Redis server was configured
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// RedisAddr is the host:port of the Redis server when no URL is given
func (c *Config) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, c.RedisPort)
}

// DemoDetection is true when no vision API key is configured
func (c *Config) DemoDetection() bool {
	return c.ClarifaiAPIKey == ""
}

// ArchiveEnabled reports whether uploaded images are copied to S3
func (c *Config) ArchiveEnabled() bool {
	return c.S3BucketName != ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
