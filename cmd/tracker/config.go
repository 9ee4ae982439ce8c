// Config loading for the tracker CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/onegoal/tracker/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyEnvironment = "environment"
	cfgKeyDataDir     = "data_dir"
	cfgKeyAddr        = "addr"
	cfgKeyCORSOrigins = "cors_origins"
	cfgKeySentryDSN   = "sentry_dsn"
	cfgKeyDevelopment = "development"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Tracker CLI configuration

# Environment name; the database file is tracker_<environment>.db
environment: development

# Listen address for the serve command
addr: ":8000"

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Comma-separated allowed CORS origins (empty allows all)
# cors_origins:

# Sentry DSN for error reporting (empty disables)
# sentry_dsn:

# Human-readable console logging
development: true
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper, with TRACKER_* environment variables layered over file values. It
// creates the config directory and a default config.yaml on first run. A
// missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyEnvironment, types.EnvDevelopment)
	v.SetDefault(cfgKeyAddr, ":8000")
	v.SetDefault(cfgKeyDevelopment, true)

	v.SetEnvPrefix("TRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml falls back to defaults and env.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
