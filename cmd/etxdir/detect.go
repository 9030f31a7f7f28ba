package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"etxdir/internal/dialect"
	"etxdir/internal/source"
)

var detectCmd = &cobra.Command{
	Use:   "detect <file>",
	Short: "Show which diagram grammar a file uses",
	Long:  `Detect runs the whole-file dialect decision and reports the grammar along with the line that decided it`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return err
	}

	decision := dialect.Detect(fs.Get(id))
	if decision.Kind == dialect.Unknown {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: no recognizable plantuml or salt construct\n", args[0])
		return &exitCodeError{code: exitUnrecognizedGrammar}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (line %d: %s)\n", args[0], decision.Kind, decision.Line, decision.Reason)
	return nil
}
