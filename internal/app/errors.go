package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/willibrandon/enrollview/internal/dataset"
)

// FormatLoadError formats a dataset load error with actionable guidance
func FormatLoadError(err error) string {
	errMsg := err.Error()

	if errors.Is(err, os.ErrNotExist) {
		return fmt.Sprintf(
			"Dataset not found.\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Check dataset.path in config.yaml or the --dataset flag\n"+
				"  2. Use an absolute path if the TUI is started from another directory\n"+
				"\nOriginal error: %s", errMsg)
	}

	if errors.Is(err, dataset.ErrUnsupportedFormat) {
		return fmt.Sprintf(
			"Unsupported dataset format.\n\n"+
				"Supported sources:\n"+
				"  - CSV (.csv, optionally .gz, .zst or .lz4 compressed)\n"+
				"  - Excel workbooks (.xlsx)\n"+
				"  - enrollview SQLite caches (.db, .sqlite)\n"+
				"  - a PostgreSQL table via dataset.postgres_dsn\n"+
				"\nOriginal error: %s", errMsg)
	}

	if errors.Is(err, dataset.ErrMissingColumn) {
		return fmt.Sprintf(
			"The dataset is missing a required column.\n\n"+
				"Required columns:\n"+
				"  State, Enrollment Year, Enrollment Month,\n"+
				"  Total Medicaid Enrollees, Total VIII Group Enrollees,\n"+
				"  Total VIII Group Newly Eligible Enrollees\n"+
				"\nOriginal error: %s", errMsg)
	}

	if errors.Is(err, dataset.ErrEmptyDataset) {
		return fmt.Sprintf(
			"The dataset has no usable rows.\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Check dataset.min_year and dataset.max_year cover the data\n"+
				"  2. Verify the file is not truncated\n"+
				"\nOriginal error: %s", errMsg)
	}

	if strings.Contains(errMsg, "failed to connect to database") ||
		strings.Contains(errMsg, "connection refused") {
		return fmt.Sprintf(
			"Cannot reach the PostgreSQL source.\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Verify dataset.postgres_dsn (host, port, credentials)\n"+
				"  2. Check that the server is running and accepting connections\n"+
				"\nOriginal error: %s", errMsg)
	}

	if strings.Contains(errMsg, "failed to query") {
		return fmt.Sprintf(
			"The PostgreSQL table could not be read.\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Verify dataset.postgres_table names an existing table\n"+
				"  2. Column names must match the published CSV header\n"+
				"\nOriginal error: %s", errMsg)
	}

	return fmt.Sprintf(
		"Failed to load dataset:\n\n"+
			"%s\n\n"+
			"Run with --debug flag for detailed logs.", errMsg)
}
