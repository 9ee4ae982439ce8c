package types

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Config holds the runtime settings the server and CLI share.
type Config struct {
	Environment string `json:"environment" yaml:"environment"`
	DataDir     string `json:"data_dir" yaml:"data_dir"`
	Addr        string `json:"addr" yaml:"addr"`
	CORSOrigins string `json:"cors_origins" yaml:"cors_origins"`
	SentryDSN   string `json:"sentry_dsn" yaml:"sentry_dsn"`
	Development bool   `json:"development" yaml:"development"`
}

// Well-known environment names. Any other non-empty name is accepted except
// EnvTemplate, whose database is a schema source and never serves traffic.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
	EnvTemplate    = "template"
)

// Config validation errors.
var (
	ErrEnvironmentEmpty    = errors.New("environment must not be empty")
	ErrEnvironmentReserved = errors.New(`environment "template" is reserved for the schema source`)
	ErrAddrEmpty           = errors.New("addr must not be empty")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Environment == "" {
		return ErrEnvironmentEmpty
	}
	if c.Environment == EnvTemplate {
		return ErrEnvironmentReserved
	}
	if c.Addr == "" {
		return ErrAddrEmpty
	}
	return nil
}

// DBPath returns the database file for the configured environment, one file
// per environment under DataDir.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, fmt.Sprintf("tracker_%s.db", c.Environment))
}
