package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flamtime/SomeNerts/internal/database"
)

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := database.RunMigrations(a.db); err != nil {
					return err
				}
				return printVersion(cmd, a)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := database.RollbackMigration(a.db); err != nil {
					return err
				}
				return printVersion(cmd, a)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show the applied schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return printVersion(cmd, a)
			},
		},
	)
	return cmd
}

func printVersion(cmd *cobra.Command, a *app) error {
	version, dirty, err := database.MigrationVersion(a.db)
	if err != nil {
		return err
	}
	state := "clean"
	if dirty {
		state = "dirty"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (%s, %s)\n", version, state, a.db.Dialect)
	return nil
}
