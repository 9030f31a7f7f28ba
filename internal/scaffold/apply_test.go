package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"etxdir/internal/tree"
)

// sampleTree builds: src/(main.py, utils/(helper.py)), README.md
func sampleTree() *tree.Node {
	root := tree.NewRoot()
	src := &tree.Node{Label: "src", Kind: tree.Directory, Depth: 1}
	utils := &tree.Node{Label: "utils", Kind: tree.Directory, Depth: 2}
	utils.Children = append(utils.Children, &tree.Node{Label: "helper.py", Kind: tree.File, Depth: 3})
	src.Children = append(src.Children, &tree.Node{Label: "main.py", Kind: tree.File, Depth: 2}, utils)
	root.Children = append(root.Children, src, &tree.Node{Label: "README.md", Kind: tree.File, Depth: 1})
	return root
}

func mustStat(t *testing.T, path string) os.FileInfo {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected %s to exist: %v", path, err)
	}
	return info
}

func TestApplyCreatesTree(t *testing.T) {
	dest := t.TempDir()
	if err := Apply(sampleTree(), Options{DestRoot: dest}); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if !mustStat(t, filepath.Join(dest, "src")).IsDir() {
		t.Fatal("src must be a directory")
	}
	if !mustStat(t, filepath.Join(dest, "src", "utils")).IsDir() {
		t.Fatal("src/utils must be a directory")
	}
	for _, f := range []string{
		filepath.Join(dest, "src", "main.py"),
		filepath.Join(dest, "src", "utils", "helper.py"),
		filepath.Join(dest, "README.md"),
	} {
		info := mustStat(t, f)
		if info.IsDir() {
			t.Fatalf("%s must be a file", f)
		}
		if info.Size() != 0 {
			t.Fatalf("%s must be empty, got %d bytes", f, info.Size())
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	dest := t.TempDir()
	root := sampleTree()
	if err := Apply(root, Options{DestRoot: dest}); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}

	// Существующий файл не должен быть усечён повторным запуском.
	marker := filepath.Join(dest, "src", "main.py")
	if err := os.WriteFile(marker, []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}

	var existing int
	opts := Options{DestRoot: dest, Progress: SinkFunc(func(ev Event) {
		if ev.Status == StatusExists {
			existing++
		}
	})}
	if err := Apply(root, opts); err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if existing != 5 {
		t.Fatalf("expected all 5 entries reported as existing, got %d", existing)
	}

	raw, err := os.ReadFile(marker)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "content" {
		t.Fatalf("existing file was modified: %q", raw)
	}
}

func TestApplyKindConflict(t *testing.T) {
	dest := t.TempDir()
	// Файл на месте будущего каталога.
	if err := os.WriteFile(filepath.Join(dest, "src"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	err := Apply(sampleTree(), Options{DestRoot: dest})
	if err == nil {
		t.Fatal("expected kind conflict error")
	}
	if !errors.Is(err, ErrKindConflict) {
		t.Fatalf("expected ErrKindConflict, got %v", err)
	}
	var entryErr *EntryError
	if !errors.As(err, &entryErr) || !entryErr.Dir {
		t.Fatalf("expected directory EntryError, got %v", err)
	}

	// Ошибка останавливает обход: README.md не должен появиться.
	if _, err := os.Stat(filepath.Join(dest, "README.md")); !os.IsNotExist(err) {
		t.Fatal("walk must halt at the failing node")
	}
}

func TestApplyDryRunTouchesNothing(t *testing.T) {
	dest := t.TempDir()
	var planned int
	opts := Options{DestRoot: dest, DryRun: true, Progress: SinkFunc(func(ev Event) {
		if ev.Status == StatusPlanned {
			planned++
		}
	})}
	if err := Apply(sampleTree(), opts); err != nil {
		t.Fatalf("dry-run failed: %v", err)
	}
	if planned != 5 {
		t.Fatalf("expected 5 planned entries, got %d", planned)
	}

	entries, err := os.ReadDir(dest)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("dry-run created entries: %v", entries)
	}
}

func TestApplyParentBeforeChild(t *testing.T) {
	dest := t.TempDir()
	var order []string
	opts := Options{DestRoot: dest, Progress: SinkFunc(func(ev Event) {
		order = append(order, filepath.Base(ev.Path))
	})}
	if err := Apply(sampleTree(), opts); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	want := []string{"src", "main.py", "utils", "helper.py", "README.md"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("materialization order %v, want %v", order, want)
		}
	}
}
