package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"etxdir/internal/tree"
)

var (
	dirStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	fileStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	kindStyle = lipgloss.NewStyle().Faint(true)
)

// FormatTreePretty renders the tree with indentation and styled labels.
func FormatTreePretty(w io.Writer, root *tree.Node) error {
	var walk func(n *tree.Node, indent string) error
	walk = func(n *tree.Node, indent string) error {
		for _, c := range n.Children {
			label := fileStyle.Render(c.Label)
			if c.Kind == tree.Directory {
				label = dirStyle.Render(c.Label + "/")
			}
			if _, err := fmt.Fprintf(w, "%s%s %s\n", indent, label, kindStyle.Render("("+c.Kind.String()+")")); err != nil {
				return err
			}
			if err := walk(c, indent+"  "); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root, "")
}

// FormatTreeTree renders the tree with box-drawing branch markers.
func FormatTreeTree(w io.Writer, root *tree.Node) error {
	var walk func(n *tree.Node, prefix string) error
	walk = func(n *tree.Node, prefix string) error {
		for i, c := range n.Children {
			branch, childPrefix := "├── ", prefix+"│   "
			if i == len(n.Children)-1 {
				branch, childPrefix = "└── ", prefix+"    "
			}
			label := c.Label
			if c.Kind == tree.Directory {
				label += "/"
			}
			if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, label); err != nil {
				return err
			}
			if err := walk(c, childPrefix); err != nil {
				return err
			}
		}
		return nil
	}
	if _, err := fmt.Fprintln(w, "."); err != nil {
		return err
	}
	return walk(root, "")
}

type jsonNode struct {
	Name     string     `json:"name"`
	Kind     string     `json:"kind"`
	Children []jsonNode `json:"children,omitempty"`
}

// FormatTreeJSON renders the tree as nested JSON.
func FormatTreeJSON(w io.Writer, root *tree.Node) error {
	var convert func(n *tree.Node) []jsonNode
	convert = func(n *tree.Node) []jsonNode {
		out := make([]jsonNode, 0, len(n.Children))
		for _, c := range n.Children {
			out = append(out, jsonNode{
				Name:     c.Label,
				Kind:     c.Kind.String(),
				Children: convert(c),
			})
		}
		return out
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(convert(root))
}
