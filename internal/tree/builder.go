package tree

import (
	"fmt"

	"etxdir/internal/diag"
	"etxdir/internal/scan"
)

// Build assembles the rooted tree from classified lines using a stack of
// currently-open ancestors. A line whose depth skips past the nearest open
// ancestor is a depth-inconsistency error and aborts the build; nothing is
// silently reattached. Children keep exact source order.
func Build(lines []scan.Line, reporter diag.Reporter) (*Node, bool) {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}

	root := NewRoot()
	// Стек открытых предков; вершина — потенциальный родитель следующей строки.
	stack := []*Node{root}

	for _, ln := range lines {
		// Закрываем уровни глубже или равные текущей строке.
		for len(stack) > 1 && stack[len(stack)-1].Depth >= ln.Depth {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]
		if parent.Depth != ln.Depth-1 {
			diag.ReportError(reporter, diag.TreeDepthInconsistency, ln.Span,
				fmt.Sprintf("line %d: depth %d skips levels, expected at most %d under %s",
					ln.Num, ln.Depth, parent.Depth+1, describe(parent))).Emit()
			return nil, false
		}

		node := &Node{
			Label: ln.Label,
			Kind:  Infer(ln.Label, ln.Explicit),
			Depth: ln.Depth,
			Line:  ln.Num,
			Span:  ln.Span,
		}
		parent.Children = append(parent.Children, node)
		stack = append(stack, node)
	}

	Reconcile(root, reporter)
	return root, true
}

// Reconcile flips every File node that ended up with children to Directory.
// A label that looked file-like but turned out to have nested content is a
// folder; this is reported as a warning, never a failure.
func Reconcile(root *Node, reporter diag.Reporter) {
	root.Walk(func(n *Node) {
		if n.Kind == File && len(n.Children) > 0 {
			n.Kind = Directory
			diag.ReportWarning(reporter, diag.TreeReclassified, n.Span,
				fmt.Sprintf("line %d: %q looked like a file but has nested entries, treating it as a directory",
					n.Line, n.Label)).Emit()
		}
	})
}

func describe(n *Node) string {
	if n.IsRoot() {
		return "the destination root"
	}
	return fmt.Sprintf("%q (line %d)", n.Label, n.Line)
}
