package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"

	"gocoach/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Engine    EngineConfig
	Sweep     SweepConfig
	Log       LogConfig
	Profiling ProfilingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	UIPort          string
	GinMode         string
	ShutdownTimeout time.Duration
}

// EngineConfig holds decision engine settings
type EngineConfig struct {
	Memoize bool
}

// SweepConfig holds domain sweep settings
type SweepConfig struct {
	Workers int
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string
	Development bool
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:    *loadServerConfig(),
		Engine:    *loadEngineConfig(),
		Sweep:     *loadSweepConfig(),
		Log:       *loadLogConfig(),
		Profiling: *loadProfilingConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            getEnvOrDefault("PORT", "8080"),
		UIPort:          getEnvOrDefault("UI_PORT", "8081"),
		GinMode:         getEnvOrDefault("GIN_MODE", "release"),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func loadEngineConfig() *EngineConfig {
	return &EngineConfig{
		Memoize: getEnvBoolOrDefault("MEMOIZE", true),
	}
}

func loadSweepConfig() *SweepConfig {
	return &SweepConfig{
		Workers: getEnvIntOrDefault("SWEEP_WORKERS", 8),
	}
}

func loadLogConfig() *LogConfig {
	return &LogConfig{
		Level:       getEnvOrDefault("LOG_LEVEL", "info"),
		Development: getEnvBoolOrDefault("LOG_DEVELOPMENT", false),
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	ports := []struct{ name, value string }{
		{"PORT", config.Server.Port},
		{"UI_PORT", config.Server.UIPort},
		{"PPROF_PORT", config.Profiling.Port},
	}
	for _, p := range ports {
		n, err := strconv.Atoi(p.value)
		if err != nil || n < 1 || n > 65535 {
			return errors.ConfigInvalid(p.name + " must be a port number between 1 and 65535")
		}
	}

	switch config.Server.GinMode {
	case "debug", "release", "test":
	default:
		return errors.ConfigInvalid("GIN_MODE must be one of debug, release, test")
	}

	if config.Server.ShutdownTimeout <= 0 {
		return errors.ConfigInvalid("SHUTDOWN_TIMEOUT must be positive")
	}

	if config.Sweep.Workers < 1 {
		return errors.ConfigInvalid("SWEEP_WORKERS must be at least 1")
	}

	if _, err := zapcore.ParseLevel(config.Log.Level); err != nil {
		return errors.ConfigInvalid("LOG_LEVEL must be one of debug, info, warn, error")
	}

	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
