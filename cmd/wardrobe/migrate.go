package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wardrobe/m/internal/migrations"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the wardrobe tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := migrations.Run(cmd.Context(), a.db); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✓ schema up to date")
			return nil
		},
	}
}
