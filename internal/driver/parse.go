// Package driver wires the phases together: load, detect dialect, classify
// lines, build the tree, materialize. Parsing never touches the filesystem;
// a tree is only handed to the scaffolder when the bag is error-free.
package driver

import (
	"etxdir/internal/diag"
	"etxdir/internal/dialect"
	"etxdir/internal/scan"
	"etxdir/internal/source"
	"etxdir/internal/tree"
)

// DefaultMaxDiagnostics bounds the bag when the caller passes 0.
const DefaultMaxDiagnostics = 100

// ParseResult is everything one parsed diagram produces.
type ParseResult struct {
	FileSet  *source.FileSet
	FileID   source.FileID
	Decision dialect.Decision
	Root     *tree.Node // nil when the bag has errors
	Bag      *diag.Bag
}

// Parse loads one diagram file and runs detection, classification and tree
// building. Grammar-level problems land in the bag, not in the returned
// error; the error is reserved for I/O.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, id, maxDiagnostics), nil
}

// ParseBytes parses in-memory content under the given name (stdin, tests).
func ParseBytes(name string, content []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return parseFile(fs, id, maxDiagnostics)
}

func parseFile(fs *source.FileSet, id source.FileID, maxDiagnostics int) *ParseResult {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	file := fs.Get(id)

	res := &ParseResult{
		FileSet: fs,
		FileID:  id,
		Bag:     bag,
	}

	res.Decision = dialect.Detect(file)
	if res.Decision.Kind == dialect.Unknown {
		diag.ReportError(reporter, diag.DetUnrecognizedGrammar, source.Span{File: id},
			"input matches neither plantuml nor salt grammar").Emit()
		return res
	}

	lines, ok := scan.New(file, res.Decision.Kind, reporter).ScanAll()
	if !ok {
		return res
	}

	root, ok := tree.Build(lines, reporter)
	if !ok {
		return res
	}
	res.Root = root
	return res
}
