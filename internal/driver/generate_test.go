package driver

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"etxdir/internal/plan"
	"etxdir/internal/scaffold"
	"etxdir/internal/tree"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// fsTree re-reads a materialized destination back into a node tree so it can
// be compared with the parsed one.
func fsTree(t *testing.T, dir string, depth int) []*tree.Node {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	// ReadDir сортирует по имени; для сравнения форм этого достаточно,
	// порядок исходника здесь не проверяется.
	out := make([]*tree.Node, 0, len(entries))
	for _, e := range entries {
		n := &tree.Node{Label: e.Name(), Kind: tree.File, Depth: depth}
		if e.IsDir() {
			n.Kind = tree.Directory
			n.Children = fsTree(t, filepath.Join(dir, e.Name()), depth+1)
		}
		out = append(out, n)
	}
	return out
}

func sortedCopy(nodes []*tree.Node) []*tree.Node {
	out := append([]*tree.Node(nil), nodes...)
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

func sameShape(t *testing.T, a, b []*tree.Node) {
	t.Helper()
	a, b = sortedCopy(a), sortedCopy(b)
	if len(a) != len(b) {
		t.Fatalf("child count mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Label != b[i].Label || a[i].Kind != b[i].Kind {
			t.Fatalf("node mismatch: (%q, %s) vs (%q, %s)", a[i].Label, a[i].Kind, b[i].Label, b[i].Kind)
		}
		sameShape(t, a[i].Children, b[i].Children)
	}
}

func TestGenerateRoundTrip(t *testing.T) {
	src := writeSource(t, "+ src\n++ main.py\n++ utils\n+++ helper.py\n+ README.md\n")
	dest := t.TempDir()

	res, err := Generate(src, 0, scaffold.Options{DestRoot: dest})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !res.Applied {
		t.Fatalf("expected apply to run: %v", res.Parse.Bag.Items())
	}

	// Перечитываем диск: формы и виды должны совпасть с разбором.
	sameShape(t, res.Root.Children, fsTree(t, dest, 1))
}

func TestGenerateFailFastOnParseError(t *testing.T) {
	src := writeSource(t, "+ src\n+++ deep.py\n")
	dest := t.TempDir()

	res, err := Generate(src, 0, scaffold.Options{DestRoot: dest})
	if err != nil {
		t.Fatalf("parse errors must not surface as I/O errors: %v", err)
	}
	if res.Applied {
		t.Fatal("apply must not run on parse errors")
	}

	entries, err := os.ReadDir(dest)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("no filesystem side effects expected, found %v", entries)
	}
}

func TestGenerateTwiceIsIdempotent(t *testing.T) {
	src := writeSource(t, "+ src\n++ main.py\n")
	dest := t.TempDir()

	for i := 0; i < 2; i++ {
		if _, err := Generate(src, 0, scaffold.Options{DestRoot: dest}); err != nil {
			t.Fatalf("run %d failed: %v", i+1, err)
		}
	}
}

func TestGenerateMissingDestination(t *testing.T) {
	src := writeSource(t, "+ src\n")
	dest := filepath.Join(t.TempDir(), "missing")

	if _, err := Generate(src, 0, scaffold.Options{DestRoot: dest}); err == nil {
		t.Fatal("expected error for missing destination root")
	}
}

func TestGenerateFromPlanMatchesDirectGenerate(t *testing.T) {
	src := writeSource(t, "+ src\n++ main.py\n+ README.md\n")

	parsed, err := Parse(src, 0)
	if err != nil {
		t.Fatal(err)
	}
	file := parsed.FileSet.Get(parsed.FileID)
	p, err := plan.FromTree(parsed.Root, file.Path, file.Hash, parsed.Decision.Kind)
	if err != nil {
		t.Fatal(err)
	}
	planPath := filepath.Join(t.TempDir(), "layout.mp")
	if err := p.Write(planPath); err != nil {
		t.Fatal(err)
	}

	dest := t.TempDir()
	res, err := GenerateFromPlan(planPath, scaffold.Options{DestRoot: dest})
	if err != nil {
		t.Fatalf("generate from plan failed: %v", err)
	}
	if !res.Applied {
		t.Fatal("expected apply to run")
	}
	sameShape(t, parsed.Root.Children, fsTree(t, dest, 1))
}
