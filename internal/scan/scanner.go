// Package scan classifies diagram source lines under an already-decided
// dialect. Structural lines (@startuml, braces, comments) are skipped,
// element lines become Line records, everything else is a malformed-line
// diagnostic with its 1-based line number.
package scan

import (
	"fmt"
	"regexp"
	"strings"

	"etxdir/internal/diag"
	"etxdir/internal/dialect"
	"etxdir/internal/safety"
	"etxdir/internal/source"
)

// elementRe matches a PlantUML element declaration: keyword, then a quoted
// or bare name, then optionally an opening brace.
var elementRe = regexp.MustCompile(`^(?i)(package|folder|namespace|node|component|class|interface|file|artifact|object)\s+(?:"([^"]*)"|'([^']*)'|([^\s{}]+))\s*(\{)?\s*$`)

// saltRe matches a Salt tree line: a run of '+' markers, then the label.
var saltRe = regexp.MustCompile(`^(\++)\s*(.*)$`)

// Scanner walks one file line by line under a fixed dialect.
type Scanner struct {
	file     *source.File
	kind     dialect.Kind
	reporter diag.Reporter

	braceDepth int // текущая вложенность фигурных скобок (PlantUML)
	failed     bool
}

// New creates a Scanner for the file under the given dialect.
func New(file *source.File, kind dialect.Kind, reporter diag.Reporter) *Scanner {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Scanner{
		file:     file,
		kind:     kind,
		reporter: reporter,
	}
}

// ScanAll classifies every line of the file in order. The boolean result is
// false when at least one line was malformed; the diagnostics carry the
// details. No partial interpretation is attempted after a failure, the scan
// still continues so that every bad line gets reported in one run.
func (sc *Scanner) ScanAll() ([]Line, bool) {
	lines := strings.Split(string(sc.file.Content), "\n")
	out := make([]Line, 0, len(lines))

	for i, raw := range lines {
		num := uint32(i + 1)
		trimmed := strings.TrimSpace(raw)
		if sc.skippable(trimmed) {
			continue
		}

		var (
			ln Line
			ok bool
		)
		switch sc.kind {
		case dialect.Salt:
			ln, ok = sc.scanSaltLine(trimmed, num)
		default:
			ln, ok = sc.scanPlantLine(trimmed, num)
		}
		if ok {
			out = append(out, ln)
		}
	}
	return out, !sc.failed
}

// skippable reports whether the line carries no element of its own:
// blank lines, `'` comments, @startuml/@enduml and salt {T headers. Brace-only
// lines are handled by scanPlantLine because they change the depth.
func (sc *Scanner) skippable(trimmed string) bool {
	if trimmed == "" {
		return true
	}
	if strings.HasPrefix(trimmed, "'") || strings.HasPrefix(trimmed, "@") {
		return true
	}
	if strings.HasPrefix(trimmed, "{T") {
		return true
	}
	if sc.kind == dialect.Salt && (trimmed == "{" || trimmed == "}") {
		return true
	}
	return false
}

func (sc *Scanner) scanPlantLine(trimmed string, num uint32) (Line, bool) {
	// Скобка на отдельной строке открывает уровень для предыдущего элемента.
	if trimmed == "{" {
		sc.braceDepth++
		return Line{}, false
	}
	if trimmed == "}" {
		if sc.braceDepth == 0 {
			diag.ReportError(sc.reporter, diag.ClsStrayBrace, sc.file.LineSpan(num),
				fmt.Sprintf("line %d: closing brace without a matching open brace", num)).Emit()
			sc.failed = true
			return Line{}, false
		}
		sc.braceDepth--
		return Line{}, false
	}

	m := elementRe.FindStringSubmatch(trimmed)
	if m == nil {
		diag.ReportError(sc.reporter, diag.ClsMalformedLine, sc.file.LineSpan(num),
			fmt.Sprintf("line %d: not a recognizable plantuml element: %q", num, trimmed)).Emit()
		sc.failed = true
		return Line{}, false
	}

	rawName := m[2]
	if rawName == "" {
		rawName = m[3]
	}
	if rawName == "" {
		rawName = m[4]
	}

	explicit := ExplicitFile
	if dialect.IsDirectoryKeyword(m[1]) {
		explicit = ExplicitDirectory
	}

	ln := Line{
		Num:      num,
		Span:     sc.file.LineSpan(num),
		Depth:    sc.braceDepth + 1,
		Label:    safety.CleanLabel(rawName),
		Explicit: explicit,
	}
	// Открывающая скобка на той же строке вводит уровень для последующих строк.
	if m[5] == "{" {
		sc.braceDepth++
	}

	if ln.Label == "" {
		diag.ReportError(sc.reporter, diag.ClsEmptyLabel, ln.Span,
			fmt.Sprintf("line %d: element name is empty after sanitization", num)).Emit()
		sc.failed = true
		return Line{}, false
	}
	if err := safety.ValidateName(ln.Label); err != nil {
		diag.ReportError(sc.reporter, diag.ClsBadName, ln.Span,
			fmt.Sprintf("line %d: %v", num, err)).Emit()
		sc.failed = true
		return Line{}, false
	}
	return ln, true
}

func (sc *Scanner) scanSaltLine(trimmed string, num uint32) (Line, bool) {
	m := saltRe.FindStringSubmatch(trimmed)
	if m == nil {
		diag.ReportError(sc.reporter, diag.ClsMalformedLine, sc.file.LineSpan(num),
			fmt.Sprintf("line %d: not a salt tree line: %q", num, trimmed)).Emit()
		sc.failed = true
		return Line{}, false
	}

	ln := Line{
		Num:   num,
		Span:  sc.file.LineSpan(num),
		Depth: len(m[1]),
		Label: safety.CleanLabel(m[2]),
		// Salt никогда не называет тип узла явно.
		Explicit: ExplicitNone,
	}
	if ln.Label == "" {
		diag.ReportError(sc.reporter, diag.ClsEmptyLabel, ln.Span,
			fmt.Sprintf("line %d: tree entry has no label", num)).Emit()
		sc.failed = true
		return Line{}, false
	}
	if err := safety.ValidateName(ln.Label); err != nil {
		diag.ReportError(sc.reporter, diag.ClsBadName, ln.Span,
			fmt.Sprintf("line %d: %v", num, err)).Emit()
		sc.failed = true
		return Line{}, false
	}
	return ln, true
}
