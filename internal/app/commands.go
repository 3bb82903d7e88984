package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/willibrandon/enrollview/internal/config"
	"github.com/willibrandon/enrollview/internal/dataset"
	"github.com/willibrandon/enrollview/internal/enrollment"
	"github.com/willibrandon/enrollview/internal/logger"
	"github.com/willibrandon/enrollview/internal/storage/sqlite"
	"github.com/willibrandon/enrollview/internal/ui"
)

// statusTimeout is how long a transient status message stays visible.
const statusTimeout = 4 * time.Second

// DatasetOptions maps the dataset section of cfg to loader options.
func DatasetOptions(cfg *config.Config) dataset.Options {
	return dataset.Options{
		Path:          cfg.Dataset.Path,
		Sheet:         cfg.Dataset.Sheet,
		PostgresDSN:   cfg.Dataset.PostgresDSN,
		PostgresTable: cfg.Dataset.PostgresTable,
		Years:         enrollment.YearRange{Min: cfg.Dataset.MinYear, Max: cfg.Dataset.MaxYear},
	}
}

// LoadDataset loads the configured dataset. When the cache is enabled the
// SQLite cache is opened for the duration of the load; a cache that cannot
// be opened is logged and skipped.
func LoadDataset(ctx context.Context, cfg *config.Config) (*dataset.Result, error) {
	opts := DatasetOptions(cfg)
	if cfg.Cache.Enabled && cfg.Cache.Path != "" && opts.PostgresDSN == "" {
		db, err := sqlite.Open(cfg.Cache.Path)
		if err != nil {
			logger.Warn("Dataset cache disabled", "path", cfg.Cache.Path, "error", err)
		} else {
			defer db.Close()
			opts.Cache = sqlite.NewRowsStore(db)
		}
	}
	return dataset.Load(ctx, opts)
}

// loadDataset creates a command that loads the dataset in the background
func loadDataset(cfg *config.Config) tea.Cmd {
	return func() tea.Msg {
		res, err := LoadDataset(context.Background(), cfg)
		if err != nil {
			logger.Error("Dataset load failed", "error", err)
			return ui.DatasetErrorMsg{Err: err}
		}
		return ui.DatasetLoadedMsg{Result: res}
	}
}

// copyToClipboard creates a command that writes text to the system clipboard
func copyToClipboard(cw *ui.ClipboardWriter, text string) tea.Cmd {
	return func() tea.Msg {
		return ui.ClipboardResultMsg{Text: text, Err: cw.Write(text)}
	}
}

// clearStatusAfter creates a command that clears the status message set at at
func clearStatusAfter(at time.Time) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return ui.ClearStatusMsg{At: at}
	})
}
