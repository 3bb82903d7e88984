package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/willibrandon/enrollview/internal/app"
	"github.com/willibrandon/enrollview/internal/chart"
	"github.com/willibrandon/enrollview/internal/config"
	"github.com/willibrandon/enrollview/internal/dataset"
	"github.com/willibrandon/enrollview/internal/logger"
	"github.com/willibrandon/enrollview/internal/ui/styles"
)

// Exit codes
const (
	ExitOK          = 0
	ExitError       = 1
	ExitConfigError = 2
	ExitLoadError   = 3
)

var (
	// Version info (set by ldflags)
	version = "dev"

	// Flags
	configPath  string
	debug       bool
	datasetPath string
	region      string
	modeName    string
	zoom        []float64
	focus       string
)

var (
	errorFormat = color.New(color.FgHiRed, color.Bold).SprintFunc()
	mutedFormat = color.New(color.FgHiBlack).SprintFunc()
)

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func configError(err error) error { return &exitError{code: ExitConfigError, err: err} }
func loadError(err error) error   { return &exitError{code: ExitLoadError, err: err} }

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitError
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		logger.Close()
		os.Exit(exitCode(err))
	}
	logger.Close()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "enrollview",
		Short: "Explore Medicaid enrollment over time",
		Long: `enrollview charts monthly Medicaid enrollment per state: total enrollees,
the VIII expansion group and its newly eligible members, as counts or as
shares of total enrollment.

Run without a subcommand to open the interactive chart.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd.Context())
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file path (default ~/.config/enrollview/config.yaml)")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
	flags.StringVar(&datasetPath, "dataset", "", "dataset file (csv, csv.gz, csv.zst, csv.lz4, xlsx or sqlite cache)")
	flags.StringVar(&region, "region", "", "state to show (default: United States total)")
	flags.StringVar(&modeName, "mode", "", "display mode: counts or share (default from config)")
	flags.Float64SliceVar(&zoom, "zoom", nil, "zoom factors applied in order after the first draw (e.g. --zoom 0.5 --zoom 0.5)")
	flags.StringVar(&focus, "focus", "", "series id to focus (total, viii, newly, share_viii, share_newly)")

	rootCmd.AddCommand(
		newViewCmd(),
		newImportCmd(),
		newRegionsCmd(),
		newPlotCmd(),
		newExportCmd(),
		newSnapshotCmd(),
	)
	return rootCmd
}

// loadConfig loads configuration, applies global flag overrides and
// initializes the logger and theme.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadConfigFromPath(configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, configError(err)
	}

	if datasetPath != "" {
		cfg.Dataset.Path = datasetPath
		cfg.Dataset.PostgresDSN = ""
	}
	if debug {
		cfg.Debug = true
		cfg.Log.Level = "debug"
	}

	if err := styles.SetTheme(cfg.UI.Theme); err != nil {
		return nil, configError(err)
	}

	if err := logger.InitLogger(logger.Options{
		Level: logger.ParseLevel(cfg.Log.Level),
		Path:  cfg.Log.File,
	}); err != nil {
		return nil, configError(err)
	}
	if cfg.Debug {
		fmt.Fprintf(os.Stderr, "Debug mode: Logs written to %s\n", logger.LogPath)
	}
	logger.Debug("enrollview starting", "version", version, "config", configPath, "dataset", cfg.Dataset.Path)
	return cfg, nil
}

// chartOptions builds the initial chart state from the global flags.
func chartOptions() (app.Options, error) {
	opts := app.Options{Region: region, Focus: focus, Zoom: zoom}
	if modeName != "" {
		mode, err := chart.ParseMode(modeName)
		if err != nil {
			return opts, configError(err)
		}
		opts.Mode = mode
	}
	return opts, nil
}

// loadFrame loads the dataset and computes the frame selected by the
// global flags.
func loadFrame(ctx context.Context) (*config.Config, *dataset.Result, chart.Frame, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, chart.Frame{}, err
	}
	opts, err := chartOptions()
	if err != nil {
		return nil, nil, chart.Frame{}, err
	}

	res, err := app.LoadDataset(ctx, cfg)
	if err != nil {
		return nil, nil, chart.Frame{}, loadError(err)
	}
	_, frame, err := app.NewChart(res.Dataset, cfg, opts)
	if err != nil {
		return nil, nil, chart.Frame{}, configError(err)
	}
	return cfg, res, frame, nil
}

// printError writes err to stderr in red. Load errors get the same
// guidance the TUI shows.
func printError(err error) {
	msg := err.Error()
	if exitCode(err) == ExitLoadError {
		msg = app.FormatLoadError(err)
	}
	fmt.Fprintln(os.Stderr, errorFormat("Error:"), msg)
	if logger.LogPath != "" {
		fmt.Fprintln(os.Stderr, mutedFormat("Log file: "+logger.LogPath))
	}
}
