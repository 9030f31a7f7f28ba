package tree

import (
	"testing"

	"etxdir/internal/scan"
)

func TestInferExplicitBeatsHeuristic(t *testing.T) {
	// "package lib.py" — ключевое слово важнее похожего на файл имени
	if got := Infer("lib.py", scan.ExplicitDirectory); got != Directory {
		t.Fatalf("explicit directory overridden: got %s", got)
	}
	if got := Infer("plainname", scan.ExplicitFile); got != File {
		t.Fatalf("explicit file overridden: got %s", got)
	}
}

func TestInferFileNameHeuristic(t *testing.T) {
	tests := []struct {
		label string
		want  Kind
	}{
		{"main.py", File},
		{"README.md", File},
		{"archive.tar.gz", File},
		{".gitignore", File},
		{"utils", Directory},
		{"src", Directory},
		{"name.", Directory},               // точка без расширения
		{"bundle.verylongext1", Directory}, // расширение длиннее 10 символов
		{"a.b", File},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := Infer(tt.label, scan.ExplicitNone); got != tt.want {
				t.Fatalf("Infer(%q) = %s, want %s", tt.label, got, tt.want)
			}
		})
	}
}
