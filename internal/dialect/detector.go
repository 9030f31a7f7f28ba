package dialect

import (
	"strings"

	"etxdir/internal/source"
)

// Decision is the whole-file dialect verdict with the signal that decided it.
type Decision struct {
	Kind   Kind
	Reason string
	Line   uint32 // 1-based line of the deciding signal, 0 if none
	Span   source.Span
}

// Detect scans the file once, top to bottom, and returns the dialect of the
// first decisive signal: a Salt marker line (`+...` or `{T`) decides Salt, a
// PlantUML element keyword decides PlantUML. A file with no signal at all
// comes back as Unknown; per-line dialect switching is deliberately not
// supported.
func Detect(f *source.File) Decision {
	lines := strings.Split(string(f.Content), "\n")
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "'") || strings.HasPrefix(line, "@") {
			// пустые строки, комментарии и @startuml/@enduml ничего не решают
			continue
		}
		lineNum := uint32(i + 1)
		span := f.LineSpan(lineNum)

		if strings.HasPrefix(line, "{T") {
			return Decision{Kind: Salt, Reason: "salt tree block marker `{T`", Line: lineNum, Span: span}
		}
		if strings.HasPrefix(line, "+") {
			return Decision{Kind: Salt, Reason: "salt tree marker line", Line: lineNum, Span: span}
		}
		if word := firstWord(line); IsElementKeyword(word) {
			return Decision{
				Kind:   PlantUML,
				Reason: "plantuml element keyword `" + strings.ToLower(word) + "`",
				Line:   lineNum,
				Span:   span,
			}
		}
	}
	return Decision{Kind: Unknown}
}
