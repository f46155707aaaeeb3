package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  // HTTP server settings
	Session SessionConfig // Session token settings
	Assets  AssetsConfig  // Static front-end and data file locations
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string `envconfig:"SERVER_PORT" default:"8080"`
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
}

// SessionConfig holds admin session settings
type SessionConfig struct {
	// TTLHours is how long a login session stays valid. Zero disables expiry.
	TTLHours int `envconfig:"SESSION_TTL_HOURS" default:"24"`
}

// AssetsConfig holds filesystem paths the server reads at startup
type AssetsConfig struct {
	// TeachersFile is the JSON file mapping teacher usernames to passwords.
	TeachersFile string `envconfig:"TEACHERS_FILE" default:"teachers.json"`
	// StaticDir is the directory of front-end files served under /static.
	StaticDir string `envconfig:"STATIC_DIR" default:"static"`
}

// GetTTL returns the session lifetime as a time.Duration. Zero means no expiry.
func (s SessionConfig) GetTTL() time.Duration {
	return time.Duration(s.TTLHours) * time.Hour
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
