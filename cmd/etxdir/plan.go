package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"etxdir/internal/driver"
	"etxdir/internal/plan"
)

var planCmd = &cobra.Command{
	Use:   "plan <source>",
	Short: "Export a diagram as a reusable plan file",
	Long: `Plan parses a diagram once and writes the flattened tree to a msgpack plan
file. The plan can be materialized later without re-parsing:
  etxdir plan src.puml -o src.mp
  etxdir generate --from-plan src.mp <dest>`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringP("output", "o", "", "plan file to write (default: source name with "+plan.Extension+")")
}

func runPlan(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	srcPath := args[0]

	outPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if outPath == "" {
		base := strings.TrimSuffix(srcPath, filepath.Ext(srcPath))
		outPath = base + plan.Extension
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	parsed, err := driver.Parse(srcPath, maxDiagnostics)
	if err != nil {
		return err
	}
	printDiagnostics(cmd, parsed)
	if parsed.Bag.HasErrors() || parsed.Root == nil {
		return exitForBag(parsed.Bag)
	}

	file := parsed.FileSet.Get(parsed.FileID)
	p, err := plan.FromTree(parsed.Root, file.Path, file.Hash, parsed.Decision.Kind)
	if err != nil {
		return err
	}
	if err := p.Write(outPath); err != nil {
		return err
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "plan: %d entries -> %s\n", len(p.Entries), outPath)
	}
	return nil
}
