package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/willibrandon/enrollview/internal/ui/components"
)

// Plot size used when stdout is not a terminal.
const (
	defaultPlotWidth  = 100
	defaultPlotHeight = 20
)

// newPlotCmd creates the plot subcommand
func newPlotCmd() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Print the chart as an ascii plot",
		Long: `Print the selected state and mode as an ascii line plot. --region, --mode,
--zoom and --focus select what is drawn; the width follows the terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, frame, err := loadFrame(cmd.Context())
			if err != nil {
				return err
			}
			if frame.NoData {
				fmt.Fprintln(os.Stdout, frame.Message)
				return nil
			}
			w, h := plotSize(width, height)
			fmt.Fprintln(os.Stdout, components.RenderPlot(frame, w, h))
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "plot width in columns (default: terminal width)")
	cmd.Flags().IntVar(&height, "height", defaultPlotHeight, "plot height in rows")
	return cmd
}

// plotSize resolves the plot size from flags and the terminal.
func plotSize(width, height int) (int, int) {
	if width <= 0 {
		width = defaultPlotWidth
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	if height <= 0 {
		height = defaultPlotHeight
	}
	return width, height
}
