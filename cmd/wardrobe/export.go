package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wardrobe/m/internal/export"
	"wardrobe/m/internal/store"
)

func newExportCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write items and wear counts to an .xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := store.New(a.db)

			items, err := s.Items(ctx)
			if err != nil {
				return err
			}
			wears, err := s.Wears(ctx)
			if err != nil {
				return err
			}

			f, err := export.Workbook(items, wears)
			if err != nil {
				return err
			}
			defer f.Close()

			if out == "" {
				out = fmt.Sprintf("wardrobe_%s.xlsx", time.Now().Format("20060102_150405"))
			}
			if err := f.SaveAs(out); err != nil {
				return fmt.Errorf("save %s: %w", out, err)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ exported %d items and %d wear counts to %s\n", len(items), len(wears), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default wardrobe_<timestamp>.xlsx)")
	return cmd
}
