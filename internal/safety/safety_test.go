package safety

import (
	"strings"
	"testing"
)

func TestCleanLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "src", "src"},
		{"double quoted", `"my app"`, "my app"},
		{"single quoted", "'my app'", "my app"},
		{"surrounding space", "  main.py  ", "main.py"},
		{"reserved chars", `na<me>:?|*`, "name"},
		{"separators stripped", `a/b\c`, "abc"},
		{"control chars", "bad\x01name", "badname"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanLabel(tt.in); got != tt.want {
				t.Fatalf("CleanLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	for _, bad := range []string{"", ".", "..", "a/b", `a\b`} {
		if err := ValidateName(bad); err == nil {
			t.Errorf("ValidateName(%q) must fail", bad)
		}
	}
	for _, good := range []string{"src", "main.py", ".gitignore", "a b"} {
		if err := ValidateName(good); err != nil {
			t.Errorf("ValidateName(%q) unexpected error: %v", good, err)
		}
	}
}

func TestSafeJoinStaysInsideRoot(t *testing.T) {
	got, err := SafeJoin("/proj", "src", "main.py")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(got, "main.py") || !strings.Contains(got, "src") {
		t.Fatalf("unexpected join result: %q", got)
	}
}

func TestSafeJoinRejectsEscape(t *testing.T) {
	if _, err := SafeJoin("/proj", "..", "etc"); err == nil {
		t.Fatal("expected escape rejection")
	}
}
