package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onegoal/tracker/internal/sqlite"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database for the configured environment",
	Long:  `Create the environment's database file and apply the schema. Safe to rerun.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sqlite.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer store.Close()

		fmt.Printf("database ready at %s\n", cfg.DBPath())
		return nil
	},
}
