package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/willibrandon/enrollview/internal/app"
	"github.com/willibrandon/enrollview/internal/logger"
)

// newViewCmd creates the view subcommand, the same as running the root
func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the interactive chart (default)",
		Long: `Open the interactive enrollment chart.

Keys: [ and ] change state, / searches states, m toggles counts/share,
+ - 0 zoom, arrows pan, 1-3 focus a series, y copies the tooltip,
! shows the debug log, ? lists every binding.
The mouse drags to pan, scrolls to zoom and hovers for values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd.Context())
		},
	}
}

// runView runs the TUI until the user quits.
func runView(_ context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := chartOptions()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		app.New(cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // hover drives the tooltip
	)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("enrollview exited")

	if m, ok := finalModel.(app.Model); ok && m.Err() != nil {
		return loadError(m.Err())
	}
	return nil
}
