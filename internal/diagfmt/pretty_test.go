package diagfmt

import (
	"strings"
	"testing"

	"etxdir/internal/diag"
	"etxdir/internal/source"
)

func TestPrettySingleDiagnostic(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("layout.txt", []byte("+ src\nnot a tree line\n"))
	f := fs.Get(id)

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ClsMalformedLine,
		Message:  "line 2: not a salt tree line",
		Primary:  f.LineSpan(2),
	})
	bag.Sort()

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Color: false, Context: true})
	out := sb.String()

	if !strings.Contains(out, "layout.txt:2:1:") {
		t.Fatalf("expected path:line:col prefix, got %q", out)
	}
	if !strings.Contains(out, "ERROR CLS_MALFORMED_LINE:") {
		t.Fatalf("expected severity and code, got %q", out)
	}
	if !strings.Contains(out, "not a tree line") {
		t.Fatalf("expected source context line, got %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("expected underline, got %q", out)
	}
}

func TestPrettyEmptySpanSkipsContext(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("notes.txt", []byte("just prose\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.DetUnrecognizedGrammar,
		Message:  "input matches neither plantuml nor salt grammar",
		Primary:  source.Span{File: id},
	})

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Context: true})
	out := sb.String()
	if strings.Contains(out, "just prose") || strings.Contains(out, "^") {
		t.Fatalf("whole-file diagnostics must not print a context line, got %q", out)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("layout.txt", []byte("+ a\n++ b\n"))
	f := fs.Get(id)

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.TreeReclassified,
		Message:  "reclassified",
		Primary:  f.LineSpan(1),
		Notes:    []diag.Note{{Span: f.LineSpan(2), Msg: "first child here"}},
	})

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	if !strings.Contains(sb.String(), "note: layout.txt:2:1: first child here") {
		t.Fatalf("expected note line, got %q", sb.String())
	}
}
