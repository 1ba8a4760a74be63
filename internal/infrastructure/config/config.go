package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"macshift/internal/domain/errors"
	"macshift/internal/domain/interfaces"
	"macshift/internal/infrastructure/ui"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the optional defaults file consulted when
// MACSHIFT_CONFIG is not set.
const DefaultConfigPath = "/etc/macshift/config.yaml"

// Config is a struct that holds application configuration
type Config struct {
	Tool ToolConfig
	Log  LogConfig
}

// ToolConfig describes how the external interface-configuration tool is invoked.
type ToolConfig struct {
	// Path is the tool binary, resolved through PATH when not absolute.
	Path string

	// CommandTimeout limits each tool invocation. Zero disables the limit,
	// matching the historical behavior where a hung tool hangs the run.
	CommandTimeout time.Duration
}

// LogConfig is a struct that holds logging and console-output configuration
type LogConfig struct {
	Level string
	Color ui.ColorMode
}

// ConfigLoader is an interface for loading configuration
type ConfigLoader interface {
	Load() (*Config, error)
}

// EnvironmentConfigLoader layers environment variables over an optional YAML
// defaults file. Environment beats file beats built-in defaults.
type EnvironmentConfigLoader struct {
	fileSystem interfaces.FileSystem
}

// NewEnvironmentConfigLoader creates a new EnvironmentConfigLoader
func NewEnvironmentConfigLoader(fs interfaces.FileSystem) ConfigLoader {
	return &EnvironmentConfigLoader{fileSystem: fs}
}

// fileConfig mirrors the YAML defaults file.
type fileConfig struct {
	Tool struct {
		Path           string `yaml:"path"`
		CommandTimeout string `yaml:"command_timeout"`
	} `yaml:"tool"`
	Log struct {
		Level string `yaml:"level"`
		Color string `yaml:"color"`
	} `yaml:"log"`
}

// Load loads configuration from the defaults file and environment variables
func (l *EnvironmentConfigLoader) Load() (*Config, error) {
	// A .env file is optional; a missing one is not an error.
	_ = godotenv.Load()

	config := &Config{
		Tool: ToolConfig{
			Path:           "ifconfig",
			CommandTimeout: 0,
		},
		Log: LogConfig{
			Level: "warn",
			Color: ui.ColorModeAuto,
		},
	}

	if err := l.applyFile(config); err != nil {
		return nil, err
	}
	l.applyEnvironment(config)

	if err := l.validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// applyFile merges the optional YAML defaults file into config.
func (l *EnvironmentConfigLoader) applyFile(config *Config) error {
	path := getEnvOrDefault("MACSHIFT_CONFIG", DefaultConfigPath)
	if !l.fileSystem.Exists(path) {
		return nil
	}

	data, err := l.fileSystem.ReadFile(path)
	if err != nil {
		return errors.NewSystemError(fmt.Sprintf("failed to read config file %s", path), err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.NewValidationError(fmt.Sprintf("invalid config file %s", path), err)
	}

	if fc.Tool.Path != "" {
		config.Tool.Path = fc.Tool.Path
	}
	if fc.Tool.CommandTimeout != "" {
		timeout, err := time.ParseDuration(fc.Tool.CommandTimeout)
		if err != nil {
			return errors.NewValidationError(
				fmt.Sprintf("invalid command_timeout %q in config file %s", fc.Tool.CommandTimeout, path), err,
			)
		}
		config.Tool.CommandTimeout = timeout
	}
	if fc.Log.Level != "" {
		config.Log.Level = fc.Log.Level
	}
	if fc.Log.Color != "" {
		config.Log.Color = ui.ColorMode(fc.Log.Color)
	}

	return nil
}

// applyEnvironment merges environment variables into config.
func (l *EnvironmentConfigLoader) applyEnvironment(config *Config) {
	config.Tool.Path = getEnvOrDefault("MACSHIFT_TOOL", config.Tool.Path)
	config.Tool.CommandTimeout = getEnvDurationOrDefault("MACSHIFT_COMMAND_TIMEOUT", config.Tool.CommandTimeout)
	config.Log.Level = getEnvOrDefault("LOG_LEVEL", config.Log.Level)
	config.Log.Color = ui.ColorMode(getEnvOrDefault("MACSHIFT_COLOR", string(config.Log.Color)))
}

// validate validates the configuration
func (l *EnvironmentConfigLoader) validate(config *Config) error {
	if config.Tool.Path == "" {
		return errors.NewValidationError("tool path not configured", nil)
	}
	if config.Tool.CommandTimeout < 0 {
		return errors.NewValidationError("command timeout must not be negative", nil)
	}

	switch config.Log.Color {
	case ui.ColorModeAuto, ui.ColorModeAlways, ui.ColorModeNever:
	default:
		return errors.NewValidationError(
			fmt.Sprintf("invalid color mode %q (expected auto, always or never)", config.Log.Color), nil,
		)
	}

	return nil
}

// Environment variable helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Bare numbers are taken as seconds.
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
