// pkg/config/config.go
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// Defaults match the public bind of the service: every interface, port 80.
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = "80"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultShutdownTimeout = 15 * time.Second
)

// Config holds everything main needs to start the server.
type Config struct {
	Host            string
	Port            string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Addr returns the host:port the server binds to.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load reads the configuration from the environment, falling back to defaults.
func Load() (Config, error) {
	cfg := Config{
		Host:      getEnv("API_HOST", DefaultHost),
		Port:      getEnv("API_PORT", DefaultPort),
		LogLevel:  getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat: getEnv("LOG_FORMAT", DefaultLogFormat),
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid API_PORT %q: must be a number between 0 and 65535", cfg.Port)
	}

	cfg.ShutdownTimeout = DefaultShutdownTimeout
	if raw, ok := os.LookupEnv("SHUTDOWN_TIMEOUT"); ok && raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", raw, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: must be positive", raw)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

// getEnv retrieves environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
