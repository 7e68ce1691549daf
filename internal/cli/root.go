// Package cli defines the bookexchange command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/mrlokans/bookexchange/internal/config"
	"github.com/mrlokans/bookexchange/internal/database"
	"github.com/mrlokans/bookexchange/internal/demo"
	"github.com/mrlokans/bookexchange/internal/entrypoint"
	"github.com/mrlokans/bookexchange/internal/logging"
)

// BuildInfo is stamped at build time via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
}

// NewRootCommand returns the root command. Running it without a
// subcommand starts the HTTP server.
func NewRootCommand(info BuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           "bookexchange",
		Short:         "Book exchange API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return entrypoint.Run(config.NewConfig(), info.Version)
		},
	}

	root.AddCommand(
		newServeCommand(info),
		newMigrateCommand(),
		newSeedCommand(),
		newVersionCommand(info),
	)
	return root
}

func newServeCommand(info BuildInfo) *cobra.Command {
	var port int32
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewConfig()
			if cmd.Flags().Changed("port") {
				cfg.HTTP.Port = port
			}
			return entrypoint.Run(cfg, info.Version)
		},
	}
	cmd.Flags().Int32VarP(&port, "port", "p", 0, "port to listen on (overrides PORT)")
	return cmd
}

func newMigrateCommand() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewConfig()
			if dbPath == "" {
				dbPath = cfg.Database.Path
			}
			logger := logging.New(cfg.Log)

			// NewDatabase migrates on open
			db, err := database.NewDatabase(dbPath, database.WithLogger(logger, cfg.Database.LogLevel))
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Database %s is up to date\n", dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "path to the database file (defaults to DATABASE_PATH)")
	return cmd
}

func newSeedCommand() *cobra.Command {
	var (
		dbPath string
		fresh  bool
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate a database with demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewConfig()
			if dbPath == "" {
				dbPath = cfg.Database.Path
			}
			return SeedDatabase(cmd.Context(), cmd.OutOrStdout(), dbPath, cfg.Auth.BcryptCost, fresh)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "path to the database file (defaults to DATABASE_PATH)")
	cmd.Flags().BoolVar(&fresh, "fresh", false, "delete the database file before seeding")
	return cmd
}

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bookexchange %s (%s) gin %s\n", info.Version, info.Commit, gin.Version)
		},
	}
}

// SeedDatabase opens dbPath, optionally removing it first, and fills it
// with demo data.
func SeedDatabase(ctx context.Context, out io.Writer, dbPath string, bcryptCost int, fresh bool) error {
	if fresh {
		if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing database: %w", err)
		}
	}

	db, err := database.NewDatabase(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	summary, err := demo.Seed(ctx, db, bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	fmt.Fprintf(out, "Seeded %s: %d clients, %d addresses, %d authors, %d books, %d links, %d sales\n",
		dbPath, summary.Clients, summary.Addresses, summary.Authors, summary.Books, summary.Links, summary.Sales)
	fmt.Fprintf(out, "Demo login: %s / %s\n", demo.DemoCorreo, demo.DemoPassword)
	return nil
}
