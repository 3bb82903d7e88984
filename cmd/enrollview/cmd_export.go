package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/willibrandon/enrollview/internal/export"
	"github.com/willibrandon/enrollview/internal/logger"
)

// newExportCmd creates the export subcommand
func newExportCmd() *cobra.Command {
	var (
		format string
		opts   export.Options
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the chart as PNG, SVG, HTML or YAML",
		Long: `Write the selected chart to a file. The format follows the extension
unless --format is given:

  .png, .svg   static image of the visible range
  .html        interactive page; the zoom slider starts at the visible range
  .yaml        frame snapshot (domains, ticks, legend, series stats)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := exportFormat(path, format)
			if err != nil {
				return err
			}

			_, _, frame, err := loadFrame(cmd.Context())
			if err != nil {
				return err
			}

			out, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			w := bufio.NewWriter(out)
			if err := export.Write(w, frame, f, opts); err != nil {
				out.Close()
				os.Remove(path)
				return err
			}
			if err := w.Flush(); err != nil {
				out.Close()
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			if err := out.Close(); err != nil {
				return err
			}

			logger.Info("Chart exported", "path", path, "format", string(f), "region", frame.Region, "mode", string(frame.Mode))
			fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "png, svg, html or yaml (default: from extension)")
	cmd.Flags().IntVar(&opts.Width, "width", export.DefaultWidth, "image width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", export.DefaultHeight, "image height in pixels")
	return cmd
}

// exportFormat picks the export format from the flag or the path.
func exportFormat(path, flag string) (export.Format, error) {
	if flag == "" {
		return export.FormatFromPath(path)
	}
	return export.FormatFromPath("." + flag)
}
