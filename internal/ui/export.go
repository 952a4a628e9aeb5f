package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/allot/internal/config"
	"github.com/javiermolinar/allot/internal/export"
	"github.com/javiermolinar/allot/internal/layout"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the allotment sheet",
		Long: `Compile every record into the room allotment sheet and write it as
room_allotments.xlsx (or .html) into the export directory.

Format and directory default to the [export] section of the config.`,
		Example: `  allot export
  allot export --format=html --out=./print`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			records, err := a.store.Snapshot(context.Background())
			if err != nil {
				return fmt.Errorf("fetching records: %w", err)
			}
			if len(records) == 0 {
				return fmt.Errorf("no data to export")
			}

			opts := exportSettings(a.config, format, outDir)
			g := layout.Compile(records, layout.WithColumnWidths(opts.SeqWidth, opts.IDWidth))
			path, err := export.Save(opts.Dir, opts.Format, export.Options{SheetName: opts.SheetName}, g)
			if err != nil {
				return fmt.Errorf("exporting: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records (%d rows, %d rooms) to %s\n",
				len(records), g.NumRows(), len(layout.Group(records)), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: xlsx or html (default from config)")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (default from config)")
	return cmd
}

// exportSettings applies flag overrides on top of the configured export section.
func exportSettings(cfg *config.Config, format, outDir string) config.ExportConfig {
	opts := cfg.Export
	if format != "" {
		opts.Format = format
	}
	if outDir != "" {
		opts.Dir = outDir
	}
	return opts
}
