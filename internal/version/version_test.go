package version

import (
	"strings"
	"testing"
)

func TestVersionIsPlain(t *testing.T) {
	if strings.ContainsRune(Version, 0x1b) {
		t.Fatalf("Version must not carry ANSI escapes: %q", Version)
	}
}
