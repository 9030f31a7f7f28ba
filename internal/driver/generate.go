package driver

import (
	"fmt"
	"os"

	"etxdir/internal/plan"
	"etxdir/internal/scaffold"
	"etxdir/internal/tree"
)

// GenerateResult reports what one generate run parsed and touched.
type GenerateResult struct {
	Parse   *ParseResult // nil when generating from a plan
	Root    *tree.Node
	Applied bool // false when parsing failed and no side effect was attempted
}

// Generate parses the diagram and, only if parsing produced no errors,
// materializes the tree under opts.DestRoot. Parse diagnostics are in the
// result's bag; the returned error covers I/O and filesystem failures.
func Generate(srcPath string, maxDiagnostics int, opts scaffold.Options) (*GenerateResult, error) {
	parsed, err := Parse(srcPath, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	res := &GenerateResult{Parse: parsed, Root: parsed.Root}
	if parsed.Bag.HasErrors() || parsed.Root == nil {
		// fail fast: ни одного побочного эффекта при плохом разборе
		return res, nil
	}
	if err := checkDest(opts.DestRoot); err != nil {
		return res, err
	}
	if err := scaffold.Apply(parsed.Root, opts); err != nil {
		return res, err
	}
	res.Applied = true
	return res, nil
}

// GenerateFromPlan materializes a previously exported plan.
func GenerateFromPlan(planPath string, opts scaffold.Options) (*GenerateResult, error) {
	p, err := plan.Read(planPath)
	if err != nil {
		return nil, err
	}
	root, err := p.Tree()
	if err != nil {
		return nil, err
	}
	res := &GenerateResult{Root: root}
	if err := checkDest(opts.DestRoot); err != nil {
		return res, err
	}
	if err := scaffold.Apply(root, opts); err != nil {
		return res, err
	}
	res.Applied = true
	return res, nil
}

// checkDest verifies the destination precondition: an existing directory.
func checkDest(dest string) error {
	st, err := os.Stat(dest)
	if err != nil {
		return fmt.Errorf("destination %s: %w", dest, err)
	}
	if !st.IsDir() {
		return fmt.Errorf("destination %s is not a directory", dest)
	}
	return nil
}
