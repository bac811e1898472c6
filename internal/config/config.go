package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration.
type Config struct {
	Env        string `envconfig:"ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"debug"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8000"`

	// MongoDB
	MongoURI      string `envconfig:"MONGO_URI" required:"true"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"travel_journal"`

	// JWT Settings
	AccessTokenSecret string        `envconfig:"ACCESS_TOKEN_SECRET" required:"true"`
	AccessTokenTTL    time.Duration `envconfig:"ACCESS_TOKEN_TTL" default:"72h"`

	// Image storage
	UploadDir     string `envconfig:"UPLOAD_DIR" default:"./uploads"`
	AssetsDir     string `envconfig:"ASSETS_DIR" default:"./assets"`
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:8000"`

	// CORS Settings
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// Rate limiting for the auth endpoints (requests per minute per IP).
	AuthRateLimit uint `envconfig:"AUTH_RATE_LIMIT" default:"10"`
}

// GetAllowedOrigins splits the CORSAllowedOrigins string into a slice.
func (c *Config) GetAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
}

// LoadConfig loads configuration from an optional .env file and the environment.
func LoadConfig(envFilePath string) (*Config, error) {
	if _, err := os.Stat(envFilePath); err == nil {
		if err := godotenv.Load(envFilePath); err != nil {
			log.Printf("Warning: Could not load %s file: %v", envFilePath, err)
		} else {
			log.Printf("Loaded configuration from %s", envFilePath)
		}
	} else if !os.IsNotExist(err) {
		log.Printf("Warning: Error checking %s file: %v", envFilePath, err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}

	return &cfg, nil
}
