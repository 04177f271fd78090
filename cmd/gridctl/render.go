package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/gridkit/internal/dataset"
	"github.com/joshuapare/gridkit/pkg/table"
	"github.com/joshuapare/gridkit/pkg/table/display"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// defaultWidth is used when stdout is not a terminal.
const defaultWidth = 100

var (
	renderExpand    []string
	renderExpandAll bool
	renderWidth     int
	renderScroll    int
)

func init() {
	cmd := newRenderCmd()
	cmd.Flags().StringSliceVar(&renderExpand, "expand", nil, "Row keys to expand (comma separated)")
	cmd.Flags().BoolVar(&renderExpandAll, "expand-all", false, "Expand every row")
	cmd.Flags().IntVar(&renderWidth, "width", 0, "Line width (default: terminal width)")
	cmd.Flags().IntVar(&renderScroll, "scroll", 0, "Number of unfixed columns to scroll past")
	rootCmd.AddCommand(cmd)
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <dataset.yaml>",
		Short: "Render a dataset as a table",
		Long: `The render command prints the header and rows of a dataset.

Example:
  gridctl render files.yaml
  gridctl render files.yaml --expand /etc,/etc/ssh
  gridctl render servers.yaml --expand-all --width 60
  gridctl render files.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args)
		},
	}
}

func runRender(args []string) error {
	ds, err := loadDataset(args[0])
	if err != nil {
		return err
	}

	expanded := table.NewKeySet()
	for _, k := range renderExpand {
		expanded.Add(table.Key(k))
	}
	if renderExpandAll {
		expanded = ds.AllKeys()
	}
	printVerbose("Expanded rows: %d\n", len(expanded))

	body := ds.Body(nil)
	rows := body.Render(ds.Records, expanded)
	body.Commit(expanded)

	if jsonOut {
		return printJSON(rows)
	}

	columns := body.Renderer.Body.FlattenColumns
	fixed := body.Renderer.Table.FixedInfoList
	opts := displayOptions(ds, columns)

	fmt.Fprintln(os.Stdout, display.RenderHeader(columns, fixed, opts))
	for _, line := range display.RenderRows(rows, fixed, opts) {
		fmt.Fprintln(os.Stdout, line.Text)
	}
	return nil
}

func displayOptions(ds *dataset.Dataset, columns []*table.Column) display.Options {
	opts := display.Options{
		Widths:     display.Widths(columns, dataset.DefaultColumnWidth),
		Width:      lineWidth(),
		ScrollX:    renderScroll,
		Prefix:     ds.Settings.Prefix,
		IndentSize: ds.Settings.IndentSize,
	}
	if noColor {
		opts.Theme = display.Plain()
	}
	return opts
}

func lineWidth() int {
	if renderWidth > 0 {
		return renderWidth
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}
