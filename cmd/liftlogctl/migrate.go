package main

import (
	"github.com/2beens/liftlog/internal/db"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the liftlog tables",
	Long: `Apply the liftlog schema to the configured database.

The schema statements are idempotent, so running migrate against an
already migrated database is a no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.Migrate(cmd.Context(), dbPool); err != nil {
			return err
		}
		color.Green("✓ Schema applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
