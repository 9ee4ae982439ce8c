// Root command for the tracker CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/onegoal/tracker/internal/paths"
	"github.com/onegoal/tracker/pkg/types"
)

// Global flag values.
var (
	flagConfigDir   string
	flagDataDir     string
	flagEnvironment string
	flagAddr        string
)

// cfg is the effective configuration, assembled by PersistentPreRunE from
// flags, config.yaml, environment variables, and defaults in that order.
var cfg types.Config

var rootCmd = &cobra.Command{
	Use:     "tracker",
	Short:   "Tracker is a local-first job application tracker",
	Version: version,
	Long: `Tracker stores job applications, companies, contacts, and notes in a
SQLite database and serves them over a REST API. One database file exists
per environment.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		v, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		dataDir, err := paths.ResolveDataDir(flagDataDir, v.GetString(cfgKeyDataDir))
		if err != nil {
			return err
		}

		environment := v.GetString(cfgKeyEnvironment)
		if flagEnvironment != "" {
			environment = flagEnvironment
		}
		addr := v.GetString(cfgKeyAddr)
		if flagAddr != "" {
			addr = flagAddr
		}

		cfg = types.Config{
			Environment: environment,
			DataDir:     dataDir,
			Addr:        addr,
			CORSOrigins: v.GetString(cfgKeyCORSOrigins),
			SentryDSN:   v.GetString(cfgKeySentryDSN),
			Development: v.GetBool(cfgKeyDevelopment),
		}
		return cfg.Validate()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.tracker-db)")
	rootCmd.PersistentFlags().StringVar(&flagEnvironment, "environment", "", "environment name selecting the database file")
	rootCmd.PersistentFlags().StringVar(&flagAddr, "addr", "", "listen address for the serve command")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(seedCmd)
}
