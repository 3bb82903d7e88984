package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/willibrandon/enrollview/internal/app"
	"github.com/willibrandon/enrollview/internal/enrollment"
)

// newRegionsCmd creates the regions subcommand
func newRegionsCmd() *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List the states in selector order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			res, err := app.LoadDataset(cmd.Context(), cfg)
			if err != nil {
				return loadError(err)
			}
			if tree {
				fmt.Fprint(os.Stdout, regionTree(res.Dataset))
				return nil
			}
			return writeRegions(os.Stdout, res.Dataset)
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "show months of data per state and year")
	return cmd
}

// writeRegions prints one display name per line.
func writeRegions(w io.Writer, ds *enrollment.Dataset) error {
	for _, r := range ds.Regions() {
		if _, err := fmt.Fprintln(w, enrollment.DisplayName(r)); err != nil {
			return err
		}
	}
	return nil
}

// regionTree renders state -> year -> month count.
func regionTree(ds *enrollment.Dataset) string {
	tree := treeprint.NewWithRoot(fmt.Sprintf("%d states", len(ds.Regions())))
	for _, r := range ds.Regions() {
		months := make(map[int]int)
		for _, row := range ds.Rows(r) {
			months[row.Year]++
		}
		years := make([]int, 0, len(months))
		for y := range months {
			years = append(years, y)
		}
		sort.Ints(years)

		branch := tree.AddBranch(enrollment.DisplayName(r))
		for _, y := range years {
			label := "months"
			if months[y] == 1 {
				label = "month"
			}
			branch.AddNode(fmt.Sprintf("%d: %d %s", y, months[y], label))
		}
	}
	return tree.String()
}
