package config

import (
	"errors"
	"os"
	"testing"
	"time"

	domainerrors "macshift/internal/domain/errors"
	"macshift/internal/infrastructure/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFileSystem serves an in-memory file set to the loader.
type fakeFileSystem struct {
	files map[string][]byte
}

func (fs *fakeFileSystem) ReadFile(path string) ([]byte, error) {
	data, ok := fs.files[path]
	if !ok {
		return nil, errors.New("file not found")
	}
	return data, nil
}

func (fs *fakeFileSystem) Exists(path string) bool {
	_, ok := fs.files[path]
	return ok
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"MACSHIFT_CONFIG", "MACSHIFT_TOOL", "MACSHIFT_COMMAND_TIMEOUT", "LOG_LEVEL", "MACSHIFT_COLOR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestEnvironmentConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name      string
		envVars   map[string]string
		files     map[string][]byte
		wantError bool
		errCheck  func(error) bool
		validate  func(*testing.T, *Config)
	}{
		{
			name: "built-in defaults",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "ifconfig", cfg.Tool.Path)
				assert.Equal(t, time.Duration(0), cfg.Tool.CommandTimeout)
				assert.Equal(t, "warn", cfg.Log.Level)
				assert.Equal(t, ui.ColorModeAuto, cfg.Log.Color)
			},
		},
		{
			name: "environment overrides",
			envVars: map[string]string{
				"MACSHIFT_TOOL":            "/sbin/ifconfig",
				"MACSHIFT_COMMAND_TIMEOUT": "10s",
				"LOG_LEVEL":                "debug",
				"MACSHIFT_COLOR":           "never",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/sbin/ifconfig", cfg.Tool.Path)
				assert.Equal(t, 10*time.Second, cfg.Tool.CommandTimeout)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, ui.ColorModeNever, cfg.Log.Color)
			},
		},
		{
			name: "bare-number timeout taken as seconds",
			envVars: map[string]string{
				"MACSHIFT_COMMAND_TIMEOUT": "30",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 30*time.Second, cfg.Tool.CommandTimeout)
			},
		},
		{
			name: "defaults file consulted",
			files: map[string][]byte{
				DefaultConfigPath: []byte("tool:\n  path: /usr/sbin/ifconfig\n  command_timeout: 5s\nlog:\n  level: warn\n  color: always\n"),
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/usr/sbin/ifconfig", cfg.Tool.Path)
				assert.Equal(t, 5*time.Second, cfg.Tool.CommandTimeout)
				assert.Equal(t, "warn", cfg.Log.Level)
				assert.Equal(t, ui.ColorModeAlways, cfg.Log.Color)
			},
		},
		{
			name: "environment beats file",
			envVars: map[string]string{
				"MACSHIFT_TOOL": "/opt/net-tools/ifconfig",
			},
			files: map[string][]byte{
				DefaultConfigPath: []byte("tool:\n  path: /usr/sbin/ifconfig\n"),
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/opt/net-tools/ifconfig", cfg.Tool.Path)
			},
		},
		{
			name: "explicit config path",
			envVars: map[string]string{
				"MACSHIFT_CONFIG": "/tmp/custom.yaml",
			},
			files: map[string][]byte{
				"/tmp/custom.yaml": []byte("log:\n  level: trace\n"),
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "trace", cfg.Log.Level)
			},
		},
		{
			name: "malformed yaml rejected",
			files: map[string][]byte{
				DefaultConfigPath: []byte("tool: [broken"),
			},
			wantError: true,
			errCheck:  domainerrors.IsValidationError,
		},
		{
			name: "bad timeout in file rejected",
			files: map[string][]byte{
				DefaultConfigPath: []byte("tool:\n  command_timeout: soon\n"),
			},
			wantError: true,
			errCheck:  domainerrors.IsValidationError,
		},
		{
			name: "invalid color mode rejected",
			envVars: map[string]string{
				"MACSHIFT_COLOR": "rainbow",
			},
			wantError: true,
			errCheck:  domainerrors.IsValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			files := tt.files
			if files == nil {
				files = map[string][]byte{}
			}
			loader := NewEnvironmentConfigLoader(&fakeFileSystem{files: files})

			cfg, err := loader.Load()

			if tt.wantError {
				require.Error(t, err)
				if tt.errCheck != nil {
					assert.True(t, tt.errCheck(err), "unexpected error type: %v", err)
				}
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}
