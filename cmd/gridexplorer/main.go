// Command gridexplorer browses a YAML dataset as an interactive table.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/gridkit/internal/dataset"
	"github.com/joshuapare/gridkit/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]
	debugMode := false

	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Program: "gridexplorer",
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	if filteredArgs[0] == "--help" || filteredArgs[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if filteredArgs[0] == "--version" || filteredArgs[0] == "-v" {
		fmt.Printf("gridexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	path := filteredArgs[0]
	logger.Info("starting gridexplorer", "path", path, "debug", debugMode)

	ds, err := dataset.Load(path)
	if err == nil {
		err = ds.ApplyEnv(os.LookupEnv)
	}
	if err != nil {
		logger.Error("failed to load dataset", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("dataset loaded",
		"records", len(ds.Records),
		"columns", len(ds.FlattenColumns()),
		"expandable", ds.Expandable.String())

	p := tea.NewProgram(NewModel(ds, path), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("gridexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: gridexplorer [options] <dataset.yaml>\n")
	fmt.Fprintf(os.Stderr, "Try 'gridexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("gridexplorer - Interactive table browser for YAML datasets")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  gridexplorer [options] <dataset.yaml>")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j         Move up/down")
	fmt.Println("    →/l              Expand row / go to first child")
	fmt.Println("    ←/h              Collapse row / go to parent")
	fmt.Println("    Enter, Space     Toggle row")
	fmt.Println("    Shift+←/→        Scroll columns")
	fmt.Println("    y, c             Copy row key, copy record as YAML")
	fmt.Println("    ?                Show help")
	fmt.Println("    q                Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.gridkit/logs/")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT:")
	fmt.Printf("  %s  Override the expandable mode (none, row, nest)\n", dataset.EnvExpandable)
	fmt.Println()
	fmt.Println("For non-interactive output, use the 'gridctl' command instead.")
}
