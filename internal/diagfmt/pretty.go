// Package diagfmt renders diagnostics and parsed trees for the console.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"etxdir/internal/diag"
	"etxdir/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	posColor  = color.New(color.Bold)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeOne(w, d, fs, opts)
	}
}

func writeOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	rel, err := source.RelativePath(f.Path, fs.BaseDir())
	if err != nil {
		rel = f.Path
	}

	pos := fmt.Sprintf("%s:%d:%d:", rel, start.Line, start.Col)
	sev := d.Severity.String()
	if opts.Color {
		pos = posColor.Sprint(pos)
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s %s %s: %s\n", pos, sev, d.Code.String(), d.Message)

	// Пустой span (вся-файловые решения) не указывает на конкретную строку.
	if opts.Context && !d.Primary.Empty() {
		writeContext(w, f, d.Primary, start, opts)
	}

	for _, n := range d.Notes {
		nStart, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", rel, nStart.Line, nStart.Col, n.Msg)
	}
}

// writeContext prints the offending source line and an underline covering
// the span. Alignment accounts for tabs and wide runes.
func writeContext(w io.Writer, f *source.File, span source.Span, start source.LineCol, opts PrettyOpts) {
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	// Табы раскрываем одинаково в строке и в отступе подчёркивания.
	fmt.Fprintf(w, "  %s\n", strings.ReplaceAll(line, "\t", "    "))

	prefix := line
	if int(start.Col-1) <= len(line) {
		prefix = line[:start.Col-1]
	}
	pad := runewidth.StringWidth(strings.ReplaceAll(prefix, "\t", "    "))

	length := int(span.Len())
	if length < 1 {
		length = 1
	}
	if rest := len(line) - len(prefix); length > rest && rest > 0 {
		length = rest
	}
	underline := "^" + strings.Repeat("~", length-1)
	if opts.Color {
		underline = errColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), underline)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}
