package tree

import (
	"strings"
	"unicode/utf8"

	"etxdir/internal/scan"
)

// maxExtensionLen bounds the file-name heuristic: a trailing extension of
// 1..10 characters after the last dot marks a label as file-like.
const maxExtensionLen = 10

// Infer decides the kind of a node from its classified line. An explicit
// grammar kind always wins; otherwise a file-extension-shaped label means
// File and everything else means Directory. The later reconciliation pass
// may still flip File to Directory when children show up.
func Infer(label string, explicit scan.Explicit) Kind {
	switch explicit {
	case scan.ExplicitDirectory:
		return Directory
	case scan.ExplicitFile:
		return File
	}
	if LooksLikeFileName(label) {
		return File
	}
	return Directory
}

// LooksLikeFileName reports whether label ends in a dot followed by 1 to 10
// non-separator characters, like `main.py` or `README.md`.
func LooksLikeFileName(label string) bool {
	idx := strings.LastIndexByte(label, '.')
	if idx < 0 {
		return false
	}
	ext := label[idx+1:]
	if n := utf8.RuneCountInString(ext); n == 0 || n > maxExtensionLen {
		return false
	}
	// Разделители в метке уже вычищены; точка в конце — не расширение.
	return true
}
