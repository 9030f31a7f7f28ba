package tree

import (
	"testing"

	"etxdir/internal/diag"
	"etxdir/internal/scan"
)

func saltLines(items ...struct {
	depth int
	label string
}) []scan.Line {
	out := make([]scan.Line, 0, len(items))
	for i, it := range items {
		out = append(out, scan.Line{
			Num:      uint32(i + 1),
			Depth:    it.depth,
			Label:    it.label,
			Explicit: scan.ExplicitNone,
		})
	}
	return out
}

type item = struct {
	depth int
	label string
}

func TestBuildSaltExampleTree(t *testing.T) {
	lines := saltLines(
		item{1, "src"},
		item{2, "main.py"},
		item{2, "utils"},
		item{3, "helper.py"},
		item{1, "README.md"},
	)
	bag := diag.NewBag(8)
	root, ok := Build(lines, diag.BagReporter{Bag: bag})
	if !ok {
		t.Fatalf("build failed: %v", bag.Items())
	}

	if len(root.Children) != 2 {
		t.Fatalf("expected 2 top-level children, got %d", len(root.Children))
	}
	src := root.Children[0]
	if src.Label != "src" || src.Kind != Directory || src.Depth != 1 {
		t.Fatalf("unexpected src node: %+v", src)
	}
	if len(src.Children) != 2 {
		t.Fatalf("expected 2 children under src, got %d", len(src.Children))
	}
	if src.Children[0].Label != "main.py" || src.Children[0].Kind != File {
		t.Fatalf("unexpected main.py node: %+v", src.Children[0])
	}
	utils := src.Children[1]
	if utils.Label != "utils" || utils.Kind != Directory {
		t.Fatalf("unexpected utils node: %+v", utils)
	}
	if len(utils.Children) != 1 || utils.Children[0].Label != "helper.py" || utils.Children[0].Kind != File {
		t.Fatalf("unexpected helper.py node: %+v", utils.Children)
	}
	readme := root.Children[1]
	if readme.Label != "README.md" || readme.Kind != File || len(readme.Children) != 0 {
		t.Fatalf("unexpected README.md node: %+v", readme)
	}
}

func TestBuildPreservesSourceOrder(t *testing.T) {
	lines := saltLines(
		item{1, "zeta"},
		item{1, "alpha"},
		item{1, "middle"},
	)
	root, ok := Build(lines, nil)
	if !ok {
		t.Fatal("build failed")
	}
	want := []string{"zeta", "alpha", "middle"}
	for i, w := range want {
		if root.Children[i].Label != w {
			t.Fatalf("child %d: got %q, want %q (no reordering allowed)", i, root.Children[i].Label, w)
		}
	}
}

func TestBuildReclassifiesFileWithChildren(t *testing.T) {
	// + utils.py / ++ helper.py: родитель выглядел файлом, но имеет потомка
	lines := saltLines(
		item{1, "utils.py"},
		item{2, "helper.py"},
	)
	bag := diag.NewBag(8)
	root, ok := Build(lines, diag.BagReporter{Bag: bag})
	if !ok {
		t.Fatalf("build failed: %v", bag.Items())
	}

	parent := root.Children[0]
	if parent.Kind != Directory {
		t.Fatalf("expected utils.py reclassified to directory, got %s", parent.Kind)
	}
	if parent.Children[0].Kind != File {
		t.Fatalf("expected helper.py to stay a file, got %s", parent.Children[0].Kind)
	}

	if bag.HasErrors() {
		t.Fatalf("reclassification must not be an error: %v", bag.Items())
	}
	if !bag.HasWarnings() {
		t.Fatal("expected a reclassification warning")
	}
	if bag.Items()[0].Code != diag.TreeReclassified {
		t.Fatalf("expected TreeReclassified, got %s", bag.Items()[0].Code)
	}
}

func TestBuildDepthSkipFails(t *testing.T) {
	// + src / +++ deep.py — пропуск уровня 2
	lines := saltLines(
		item{1, "src"},
		item{3, "deep.py"},
	)
	bag := diag.NewBag(8)
	root, ok := Build(lines, diag.BagReporter{Bag: bag})
	if ok || root != nil {
		t.Fatal("expected build failure for depth skip")
	}
	first, found := bag.FirstError()
	if !found || first.Code != diag.TreeDepthInconsistency {
		t.Fatalf("expected TreeDepthInconsistency, got %+v", first)
	}
}

func TestBuildFirstLineTooDeepFails(t *testing.T) {
	lines := saltLines(item{2, "orphan"})
	bag := diag.NewBag(8)
	if _, ok := Build(lines, diag.BagReporter{Bag: bag}); ok {
		t.Fatal("expected failure: first line cannot start below depth 1")
	}
}

func TestBuildDepthDropThenRise(t *testing.T) {
	lines := saltLines(
		item{1, "a"},
		item{2, "b"},
		item{3, "c"},
		item{1, "d"},
		item{2, "e"},
	)
	root, ok := Build(lines, nil)
	if !ok {
		t.Fatal("build failed")
	}
	d := root.Children[1]
	if d.Label != "d" || len(d.Children) != 1 || d.Children[0].Label != "e" {
		t.Fatalf("expected e attached under d, got %+v", d)
	}
}
