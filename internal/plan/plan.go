// Package plan flattens a parsed tree into a versioned, serializable
// payload. Plans let a diagram be parsed once and materialized later (or
// elsewhere) without re-reading the source.
package plan

import (
	"fmt"
	"os"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"etxdir/internal/dialect"
	"etxdir/internal/tree"
)

// SchemaVersion — increment when the payload format changes.
const SchemaVersion uint16 = 1

// Extension is the conventional suffix for plan files.
const Extension = ".mp"

// Entry is one flattened node in source order.
type Entry struct {
	Name  string
	Dir   bool
	Depth uint16 // 1-based, root children have depth 1
}

// Plan is the serializable form of one parsed diagram.
type Plan struct {
	Schema     uint16
	SourcePath string
	SourceHash [32]byte
	Dialect    uint8
	Entries    []Entry
}

// FromTree flattens root (excluding the synthetic root itself) into a Plan.
func FromTree(root *tree.Node, sourcePath string, sourceHash [32]byte, d dialect.Kind) (*Plan, error) {
	p := &Plan{
		Schema:     SchemaVersion,
		SourcePath: sourcePath,
		SourceHash: sourceHash,
		Dialect:    uint8(d),
	}
	var convErr error
	root.Walk(func(n *tree.Node) {
		if n.IsRoot() || convErr != nil {
			return
		}
		depth, err := safecast.Conv[uint16](n.Depth)
		if err != nil {
			convErr = fmt.Errorf("node %q: depth overflow: %w", n.Label, err)
			return
		}
		p.Entries = append(p.Entries, Entry{Name: n.Label, Dir: n.Kind == tree.Directory, Depth: depth})
	})
	if convErr != nil {
		return nil, convErr
	}
	return p, nil
}

// Tree rebuilds the node tree from the flattened entries. Depth gaps are a
// corruption error: plans are produced from validated trees only.
func (p *Plan) Tree() (*tree.Node, error) {
	root := tree.NewRoot()
	stack := []*tree.Node{root}
	for i, e := range p.Entries {
		depth := int(e.Depth)
		for len(stack) > 1 && stack[len(stack)-1].Depth >= depth {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]
		if parent.Depth != depth-1 {
			return nil, fmt.Errorf("plan entry %d (%q): depth %d does not continue depth %d",
				i, e.Name, depth, parent.Depth)
		}
		kind := tree.File
		if e.Dir {
			kind = tree.Directory
		}
		node := &tree.Node{Label: e.Name, Kind: kind, Depth: depth}
		parent.Children = append(parent.Children, node)
		stack = append(stack, node)
	}
	// Плоский список мог быть отредактирован руками — сверим виды.
	tree.Reconcile(root, nil)
	return root, nil
}

// Write serializes the plan to path.
func (p *Plan) Write(path string) error {
	raw, err := msgpack.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}
	return nil
}

// Read loads and validates a plan from path.
func Read(path string) (*Plan, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Plan
	if err := msgpack.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", path, err)
	}
	if p.Schema != SchemaVersion {
		return nil, fmt.Errorf("plan %s: schema %d, want %d (re-export the plan)", path, p.Schema, SchemaVersion)
	}
	return &p, nil
}
