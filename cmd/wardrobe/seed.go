package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"wardrobe/m/internal/migrations"
	"wardrobe/m/internal/seed"
)

func newSeedCmd(a *app) *cobra.Command {
	var itemsPath, wearsPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load item and wear count CSV exports into a development database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if itemsPath == "" && wearsPath == "" {
				return fmt.Errorf("at least one of --items or --wears is required")
			}
			ctx := cmd.Context()
			if err := migrations.Run(ctx, a.db); err != nil {
				return err
			}

			// Items first so wear rows can satisfy their foreign key.
			if itemsPath != "" {
				n, err := loadFile(ctx, a.db, itemsPath, seed.LoadItems)
				if err != nil {
					return err
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ seeded %d items\n", n)
			}
			if wearsPath != "" {
				n, err := loadFile(ctx, a.db, wearsPath, seed.LoadWears)
				if err != nil {
					return err
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ seeded %d wear counts\n", n)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&itemsPath, "items", "", "CSV file with item_info rows")
	cmd.Flags().StringVar(&wearsPath, "wears", "", "CSV file with wear_count rows")
	return cmd
}

type loader func(ctx context.Context, db *sqlx.DB, r io.Reader) (int, error)

func loadFile(ctx context.Context, db *sqlx.DB, path string, load loader) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return load(ctx, db, f)
}
