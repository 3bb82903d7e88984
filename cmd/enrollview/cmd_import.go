package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/willibrandon/enrollview/internal/app"
	"github.com/willibrandon/enrollview/internal/dataset"
	"github.com/willibrandon/enrollview/internal/enrollment"
)

// newImportCmd creates the import subcommand
func newImportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Parse a dataset once and store it for fast startup",
		Long: `Parse the configured dataset and write its rows to the SQLite cache
(cache.path), or to --output. The output format follows the file extension:
.db/.sqlite writes an enrollview cache, .csv (optionally .gz, .zst or .lz4)
and .xlsx convert the dataset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: cache.path)")
	return cmd
}

func runImport(ctx context.Context, output string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if output == "" {
		output = cfg.Cache.Path
	}

	spinner, _ := pterm.DefaultSpinner.Start("Reading dataset...")
	rows, res, err := dataset.LoadRows(ctx, app.DatasetOptions(cfg))
	if err != nil {
		spinner.Fail("Read failed")
		return loadError(err)
	}

	spinner.UpdateText(fmt.Sprintf("Writing %s rows to %s...", humanize.Comma(int64(len(rows))), filepath.Base(output)))
	if err := dataset.WriteFile(ctx, output, res.Source, rows); err != nil {
		spinner.Fail("Write failed")
		return err
	}
	spinner.Success(fmt.Sprintf("Imported %s", res.Source))

	ds := enrollment.NewDataset(rows, enrollment.YearRange{Min: cfg.Dataset.MinYear, Max: cfg.Dataset.MaxYear})
	return pterm.DefaultTable.WithHasHeader().WithData(importSummary(res, ds, output)).Render()
}

// importSummary lists what was read and written.
func importSummary(res *dataset.Result, ds *enrollment.Dataset, output string) pterm.TableData {
	years := ds.Years()
	return pterm.TableData{
		{"Item", "Value"},
		{"Source", res.Source},
		{"Format", string(res.Format)},
		{"Records", humanize.Comma(int64(res.Stats.Records))},
		{"Skipped", humanize.Comma(int64(res.Stats.SkippedRows))},
		{"Empty cells", humanize.Comma(int64(res.Stats.NullCells))},
		{fmt.Sprintf("Rows %d-%d", years.Min, years.Max), humanize.Comma(int64(ds.Len()))},
		{"States", humanize.Comma(int64(len(ds.Regions())))},
		{"Output", output},
	}
}
