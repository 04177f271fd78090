package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/gridkit/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "gridctl",
	Short: "Render YAML datasets as terminal tables",
	Long: `gridctl renders table datasets described in YAML: columns, nested
records and table settings. Rows can be expanded either into a detail row
or into their nested children.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// loadDataset reads a dataset and applies environment overrides.
func loadDataset(path string) (*dataset.Dataset, error) {
	printVerbose("Loading dataset: %s\n", path)
	ds, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	if err := ds.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	printVerbose("Loaded %d records, %d columns, expandable=%s\n",
		len(ds.Records), len(ds.FlattenColumns()), ds.Expandable)
	return ds, nil
}
