package dialect

import "strings"

// directoryKeywords are PlantUML element keywords that declare a container
// and therefore map to directories.
var directoryKeywords = map[string]bool{
	"package":   true,
	"folder":    true,
	"namespace": true,
	"node":      true,
	"component": true,
}

// fileKeywords are PlantUML element keywords that declare a leaf element and
// therefore map to files.
var fileKeywords = map[string]bool{
	"class":     true,
	"interface": true,
	"file":      true,
	"artifact":  true,
	"object":    true,
}

// IsDirectoryKeyword reports whether word declares a directory-like element.
func IsDirectoryKeyword(word string) bool {
	return directoryKeywords[strings.ToLower(word)]
}

// IsFileKeyword reports whether word declares a file-like element.
func IsFileKeyword(word string) bool {
	return fileKeywords[strings.ToLower(word)]
}

// IsElementKeyword reports whether word declares any PlantUML element.
func IsElementKeyword(word string) bool {
	return IsDirectoryKeyword(word) || IsFileKeyword(word)
}

// firstWord returns the first whitespace-delimited word of a trimmed line.
func firstWord(line string) string {
	for i, r := range line {
		if r == ' ' || r == '\t' {
			return line[:i]
		}
	}
	return line
}
