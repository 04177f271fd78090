package main

import (
	"fmt"

	"github.com/joshuapare/gridkit/pkg/table"
	"github.com/joshuapare/gridkit/pkg/table/display"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newColumnsCmd())
}

func newColumnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "columns <dataset.yaml>",
		Short: "List the flattened columns of a dataset",
		Long: `The columns command lists the leaf columns in display order together
with the cell key each one renders under and its fixed position.

Example:
  gridctl columns files.yaml
  gridctl columns files.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColumns(args)
		},
	}
}

// columnInfo is one entry of the columns listing.
type columnInfo struct {
	Key       string `json:"key"`
	Title     string `json:"title"`
	DataIndex string `json:"dataIndex,omitempty"`
	Width     int    `json:"width"`
	Fixed     string `json:"fixed,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

func describeColumns(columns []*table.Column) []columnInfo {
	keys := table.ColumnsKey(columns)
	fixed := table.FixedInfoList(columns)
	out := make([]columnInfo, len(columns))
	for i, c := range columns {
		out[i] = columnInfo{
			Key:       keys[i],
			Title:     display.Title(c),
			DataIndex: c.DataIndex.String(),
			Width:     c.Width,
			Fixed:     fixed[i].Side.String(),
			Offset:    fixed[i].Offset,
		}
	}
	return out
}

func runColumns(args []string) error {
	ds, err := loadDataset(args[0])
	if err != nil {
		return err
	}
	infos := describeColumns(ds.FlattenColumns())

	if jsonOut {
		return printJSON(infos)
	}

	printInfo("\nColumns in %s:\n", args[0])
	for _, c := range infos {
		fixed := "-"
		if c.Fixed != "" {
			fixed = fmt.Sprintf("%s@%d", c.Fixed, c.Offset)
		}
		printInfo("  %-12s %-14s %-14s %4d  %s\n", c.Key, c.Title, c.DataIndex, c.Width, fixed)
	}
	printInfo("\nTotal: %d columns\n", len(infos))
	return nil
}
