package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onegoal/tracker/internal/sqlite"
	"github.com/onegoal/tracker/pkg/types"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the standard job search sites",
	Long:  `Insert the standard job boards into the environment's database, skipping any that already exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sqlite.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer store.Close()

		n, err := store.SeedJobSearchSites(types.SystemUser)
		if err != nil {
			return fmt.Errorf("seed job search sites: %w", err)
		}
		fmt.Printf("seeded %d job search sites\n", n)
		return nil
	},
}
