package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/willibrandon/enrollview/internal/export"
	"github.com/willibrandon/enrollview/internal/ui/highlight"
)

// newSnapshotCmd creates the snapshot subcommand
func newSnapshotCmd() *cobra.Command {
	var colorMode string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print the computed chart frame as YAML",
		Long: `Print the frame the chart would draw for --region, --mode, --zoom and
--focus: domains, axis ticks, legend, focus and per-series statistics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, frame, err := loadFrame(cmd.Context())
			if err != nil {
				return err
			}
			data, err := export.MarshalSnapshot(frame)
			if err != nil {
				return err
			}

			out := string(data)
			if useColor(colorMode) {
				out = highlight.YAML(out, cfg.UI.Theme)
			}
			fmt.Fprint(os.Stdout, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&colorMode, "color", "auto", "highlight output: auto, always or never")
	return cmd
}

// useColor resolves the --color flag against stdout.
func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
