package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"etxdir/internal/diag"
	"etxdir/internal/diagfmt"
	"etxdir/internal/driver"
	"etxdir/internal/tree"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.puml|directory>",
	Short: "Parse a diagram and print the resulting tree",
	Long:  `Parse analyzes a diagram file (or every *.puml/*.txt file in a directory) and prints the directory tree it describes, without touching the filesystem`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|tree)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	// Проверяем, файл это или директория
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		parsed, err := driver.Parse(path, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		printDiagnostics(cmd, parsed)
		if parsed.Bag.HasErrors() || parsed.Root == nil {
			return exitForBag(parsed.Bag)
		}
		return renderTree(cmd, format, parsed.Root)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	results, err := driver.ParseDir(cmd.Context(), path, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("no *.puml or *.txt files under %s", path)
	}

	// Сводный bag по всем файлам; код выхода — по первой ошибке обхода.
	combined := diag.NewBag(maxDiagnostics)
	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "== %s (%s)\n", r.Path, r.Result.Decision.Kind)
		printDiagnostics(cmd, r.Result)
		if r.Result.Bag.HasErrors() || r.Result.Root == nil {
			combined.Merge(r.Result.Bag)
			continue
		}
		if err := renderTree(cmd, format, r.Result.Root); err != nil {
			return err
		}
	}
	if combined.HasErrors() {
		return exitForBag(combined)
	}
	return nil
}

func renderTree(cmd *cobra.Command, format string, root *tree.Node) error {
	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		return diagfmt.FormatTreePretty(out, root)
	case "json":
		return diagfmt.FormatTreeJSON(out, root)
	case "tree":
		return diagfmt.FormatTreeTree(out, root)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
