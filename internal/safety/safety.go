// Package safety holds the path hygiene primitives: label cleaning, single
// segment validation and root-confined joins. The parsing core only ever
// sees labels that went through CleanLabel.
package safety

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// reservedChars are characters that are invalid in file names on at least
// one supported filesystem (NTFS being the strictest).
const reservedChars = `<>:"|?*`

// CleanLabel strips tree markers' leftovers, surrounding quotes and
// whitespace, removes reserved characters and normalizes the result to NFC.
func CleanLabel(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, `"`)
	s = strings.Trim(s, `'`)
	s = strings.TrimSpace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(reservedChars, r) || r < 0x20 {
			continue
		}
		// Разделители внутри метки недопустимы: один узел = один сегмент.
		if r == '/' || r == '\\' {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}

// ValidateName проверяет, что имя — один путь-сегмент без разделителей,
// не ".", не ".." и не абсолютный путь.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid name: %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("name must not contain path separators: %q", name)
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("absolute paths are not allowed: %q", name)
	}
	return nil
}

// SafeJoin объединяет root и parts и убеждается, что результат остаётся
// внутри root.
func SafeJoin(root string, parts ...string) (string, error) {
	p := filepath.Join(append([]string{root}, parts...)...)
	cleanRoot := filepath.Clean(root)
	cleanP := filepath.Clean(p)

	rel, err := filepath.Rel(cleanRoot, cleanP)
	if err != nil {
		return "", err
	}
	relSl := filepath.ToSlash(rel)
	if relSl == ".." || strings.HasPrefix(relSl, "../") {
		return "", fmt.Errorf("path escapes destination root: %s", p)
	}
	return cleanP, nil
}
