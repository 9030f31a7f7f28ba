package scan

import "etxdir/internal/source"

// Explicit is the kind stated by the grammar itself, when it states one.
// Salt never does; PlantUML keywords always do.
type Explicit uint8

const (
	ExplicitNone Explicit = iota
	ExplicitDirectory
	ExplicitFile
)

func (e Explicit) String() string {
	switch e {
	case ExplicitDirectory:
		return "directory"
	case ExplicitFile:
		return "file"
	default:
		return "none"
	}
}

// Line is one classified source line: its nesting depth, the cleaned label
// and the explicitly declared kind, if any.
type Line struct {
	Num      uint32 // 1-based source line
	Span     source.Span
	Depth    int
	Label    string
	Explicit Explicit
}
