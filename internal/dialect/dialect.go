package dialect

import "fmt"

// Kind represents one of the two diagram grammars etxdir understands.
type Kind uint8

const (
	Unknown Kind = iota
	// PlantUML is the bracketed keyword grammar (`package "x" { ... }`).
	PlantUML
	// Salt is the PlantUML Salt tree grammar (`++ name` marker lines).
	Salt

	kindCount
)

func (k Kind) String() string {
	switch k {
	case PlantUML:
		return "plantuml"
	case Salt:
		return "salt"
	default:
		return "unknown"
	}
}

func (k Kind) GoString() string {
	return fmt.Sprintf("dialect.Kind(%s)", k.String())
}
