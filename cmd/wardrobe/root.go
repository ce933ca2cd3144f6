package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"wardrobe/m/internal/config"
	"wardrobe/m/internal/database"
	"wardrobe/m/internal/logger"
)

// app carries what every subcommand shares once the root command has run.
type app struct {
	configPath string
	dsn        string

	cfg config.Config
	log *slog.Logger
	db  *sqlx.DB
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "wardrobe",
		Short: "Personal wardrobe tracker",
		Long: `Track what is in your wardrobe and how often you wear it.

Examples:
  wardrobe serve --port 8080
  wardrobe seed --items items.csv --wears wears.csv
  wardrobe export --out wardrobe.xlsx`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.db != nil {
				return a.db.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&a.dsn, "db", "", "SQLite path or postgres:// URL (overrides DATABASE_DSN)")

	root.AddCommand(
		newServeCmd(a),
		newMigrateCmd(a),
		newSeedCmd(a),
		newExportCmd(a),
		newMCPCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db") {
		cfg.DatabaseDSN = a.dsn
	}
	a.cfg = cfg
	// stdout carries the MCP protocol, so that command logs to stderr.
	if cmd.Name() == "mcp" {
		a.log = logger.NewWithWriter(os.Stderr, cfg.Env)
	} else {
		a.log = logger.New(cfg.Env)
	}
	slog.SetDefault(a.log)

	a.db, err = database.Connect(cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	a.log.Debug("database opened", "driver", database.Driver(cfg.DatabaseDSN))
	return nil
}
