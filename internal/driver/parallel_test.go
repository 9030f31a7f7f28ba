package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestParseDirDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	sources := map[string]string{
		"b.puml":     "package \"app\" {\n}\n",
		"a.txt":      "+ src\n++ main.py\n",
		"sub/c.puml": "folder \"lib\"\n",
		"ignored.md": "+ not a diagram source\n",
	}
	for name, content := range sources {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	results, err := ParseDir(context.Background(), dir, 0, 4)
	if err != nil {
		t.Fatalf("parse dir failed: %v", err)
	}

	want := []string{"a.txt", "b.puml", "sub/c.puml"}
	if len(results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(results))
	}
	for i, w := range want {
		if results[i].Path != w {
			t.Fatalf("result %d: got %q, want %q", i, results[i].Path, w)
		}
		if results[i].Result.Bag.HasErrors() {
			t.Fatalf("%s: unexpected errors: %v", w, results[i].Result.Bag.Items())
		}
		if base := results[i].Result.FileSet.BaseDir(); base != dir {
			t.Fatalf("%s: base dir %q, want scan root %q", w, base, dir)
		}
	}
}

func TestParseDirEmptyDirectory(t *testing.T) {
	results, err := ParseDir(context.Background(), t.TempDir(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}
