package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flamtime/SomeNerts/internal/database"
	"github.com/flamtime/SomeNerts/internal/logger"
	"github.com/flamtime/SomeNerts/internal/services"
	"github.com/flamtime/SomeNerts/pkg/config"
)

// app holds what every subcommand needs once the database is open
type app struct {
	cfg  *config.Config
	db   *database.DB
	log  logger.Logger
	svcs *services.Services
}

// close releases the database and flushes the logger. It is safe to call
// when PersistentPreRunE failed part way.
func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func newRootCmd() (*cobra.Command, *app) {
	var (
		configPath  string
		databaseURL string
		verbose     bool
	)
	a := &app{}

	root := &cobra.Command{
		Use:           "nertsctl",
		Short:         "Operate a SomeNerts score book",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = os.Getenv("SOMENERTS_CONFIG")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if databaseURL != "" {
				cfg.DatabaseURL = databaseURL
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			level := "warn"
			if verbose {
				level = "debug"
			}
			log, err := logger.New(level)
			if err != nil {
				return err
			}
			a.log = log.With("command", cmd.CommandPath())

			if a.db, err = database.New(cfg.DatabaseURL); err != nil {
				return err
			}
			a.cfg = cfg
			a.svcs = services.NewServices(a.db.DB, cfg, a.log, nil)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file (or set SOMENERTS_CONFIG)")
	root.PersistentFlags().StringVar(&databaseURL, "database", "", "Database URL, overrides DATABASE_URL")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newMigrateCmd(a),
		newOwnerCmd(a),
		newStatsCmd(a),
		newGamesCmd(a),
	)
	return root, a
}

// execute runs root and always releases what its pre-run opened, including
// when a subcommand fails.
func execute(ctx context.Context, root *cobra.Command, a *app) error {
	defer a.close()
	return root.ExecuteContext(ctx)
}
