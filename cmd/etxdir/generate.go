package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"etxdir/internal/diagfmt"
	"etxdir/internal/driver"
	"etxdir/internal/plan"
	"etxdir/internal/scaffold"
	"etxdir/internal/tree"
)

var generateCmd = &cobra.Command{
	Use:     "generate <source> <dest>",
	Aliases: []string{"gen"},
	Short:   "Create the directory structure a diagram describes",
	Long: `Generate parses a PlantUML component or Salt tree diagram and creates the
matching directories and empty files under <dest>. Creation is idempotent:
re-running against a partially built destination is safe. With --from-plan
the diagram is skipped and a previously exported plan is materialized:
  etxdir generate --from-plan src.mp <dest>`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Bool("dry-run", false, "print what would be created without touching the filesystem")
	generateCmd.Flags().String("ui", "auto", "interactive progress display (auto|on|off)")
	generateCmd.Flags().String("from-plan", "", "materialize a plan file instead of parsing a diagram")
	generateCmd.Flags().String("dperm", "", "permissions for created directories (octal, default 0755)")
	generateCmd.Flags().String("fperm", "", "permissions for created files (octal, default 0644)")
	generateCmd.Flags().String("exec-glob", "", "comma-separated globs of files that get 0755")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	fromPlan, err := cmd.Flags().GetString("from-plan")
	if err != nil {
		return err
	}

	var srcPath, dest string
	switch {
	case fromPlan != "" && len(args) == 1:
		dest = args[0]
	case fromPlan == "" && len(args) == 2:
		srcPath, dest = args[0], args[1]
	default:
		return fmt.Errorf("expected <source> <dest>, or --from-plan <plan> <dest>")
	}

	// Дальше ошибки — наши, usage не показываем.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	manifestStart := filepath.Dir(srcPath)
	if srcPath == "" {
		manifestStart = filepath.Dir(fromPlan)
	}
	opts, err := resolveScaffoldOptions(cmd, manifestStart)
	if err != nil {
		return err
	}
	opts.DestRoot = dest
	opts.DryRun = dryRun

	// Корень назначения — предусловие ядра; создаёт его CLI-слой.
	if !dryRun {
		if err := os.MkdirAll(dest, opts.DirPerm); err != nil {
			return fmt.Errorf("failed to create destination root: %w", err)
		}
	}

	// Дерево получаем до применения: TUI нужен размер, плану не нужен парсер.
	var root *tree.Node
	if fromPlan != "" {
		p, err := plan.Read(fromPlan)
		if err != nil {
			return err
		}
		if root, err = p.Tree(); err != nil {
			return err
		}
	} else {
		parsed, err := driver.Parse(srcPath, maxDiagnostics)
		if err != nil {
			return err
		}
		printDiagnostics(cmd, parsed)
		if parsed.Bag.HasErrors() || parsed.Root == nil {
			return exitForBag(parsed.Bag)
		}
		root = parsed.Root
	}

	useTUI := shouldUseTUI(mode) && !dryRun && !quiet
	created, existed, applyErr := applyTree(root, opts, useTUI, quiet, dest)
	if applyErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", applyErr)
		return exitForErr(applyErr)
	}

	if !quiet {
		if dryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "dry-run: %d entries would be created under %s\n", root.CountEntries(), dest)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "created %d entries under %s (%d already existed)\n", created, dest, existed)
		}
	}
	return nil
}

// applyTree materializes root, either behind the TUI or with plain console
// lines, and returns created/existing counters.
func applyTree(root *tree.Node, opts scaffold.Options, useTUI, quiet bool, dest string) (created, existed int, err error) {
	count := func(ev scaffold.Event) {
		switch ev.Status {
		case scaffold.StatusCreated, scaffold.StatusPlanned:
			created++
		case scaffold.StatusExists:
			existed++
		}
	}

	if useTUI {
		err = runScaffoldWithUI(root, opts, dest, count)
		return created, existed, err
	}

	opts.Progress = scaffold.SinkFunc(func(ev scaffold.Event) {
		count(ev)
		if quiet {
			return
		}
		kind := "file"
		if ev.Dir {
			kind = "dir "
		}
		suffix := ""
		switch ev.Status {
		case scaffold.StatusExists:
			suffix = " (exists)"
		case scaffold.StatusPlanned:
			suffix = " (dry-run)"
		}
		fmt.Printf("%s %s%s\n", kind, ev.Path, suffix)
	})
	err = scaffold.Apply(root, opts)
	return created, existed, err
}

// resolveScaffoldOptions merges manifest defaults with explicit flags; the
// flag wins when the user set it.
func resolveScaffoldOptions(cmd *cobra.Command, startDir string) (scaffold.Options, error) {
	opts := scaffold.Options{}

	manifest, found, err := loadManifest(startDir)
	if err != nil {
		return opts, err
	}

	dpermStr, fpermStr := "", ""
	var globs []string
	if found {
		dpermStr = manifest.Config.Scaffold.DirPerm
		fpermStr = manifest.Config.Scaffold.FilePerm
		globs = manifest.Config.Scaffold.ExecGlobs
	}
	if cmd.Flags().Changed("dperm") {
		dpermStr, _ = cmd.Flags().GetString("dperm")
	}
	if cmd.Flags().Changed("fperm") {
		fpermStr, _ = cmd.Flags().GetString("fperm")
	}
	if cmd.Flags().Changed("exec-glob") {
		raw, _ := cmd.Flags().GetString("exec-glob")
		globs = splitGlobs(raw)
	}

	if opts.DirPerm, err = parsePerm(dpermStr, 0o755); err != nil {
		return opts, fmt.Errorf("invalid --dperm: %w", err)
	}
	if opts.FilePerm, err = parsePerm(fpermStr, 0o644); err != nil {
		return opts, fmt.Errorf("invalid --fperm: %w", err)
	}
	opts.ExecGlobs = globs
	return opts, nil
}

func splitGlobs(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// printDiagnostics renders the bag to stderr (sorted, colored when a TTY).
func printDiagnostics(cmd *cobra.Command, parsed *driver.ParseResult) {
	if parsed.Bag.Len() == 0 {
		return
	}
	parsed.Bag.Sort()
	diagfmt.Pretty(os.Stderr, parsed.Bag, parsed.FileSet, diagfmt.PrettyOpts{
		Color:   useColor(cmd, os.Stderr),
		Context: true,
	})
}
