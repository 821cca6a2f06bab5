// Package intake turns uploaded resume files into candidates and handles the
// JSON/CSV transfer formats.
package intake

import (
	"path/filepath"
	"regexp"
	"strings"
)

// PlaceholderName is the final fallback when a filename yields no usable
// candidate name.
const PlaceholderName = "New Candidate"

var (
	separators = strings.NewReplacer(".", " ", "_", " ", "-", " ")
	digitRuns  = regexp.MustCompile(`[0-9]+`)
)

// clean strips digit runs, turns separator characters into spaces and
// collapses the remaining whitespace.
func clean(s string) string {
	s = separators.Replace(s)
	s = digitRuns.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// NameFromFilename guesses a candidate name from an uploaded resume's
// filename: extension off, separators to spaces, digits stripped. When the
// cleaned stem is empty it falls back to the base name as uploaded, then to
// PlaceholderName.
func NameFromFilename(filename string) string {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	if name := clean(stem); name != "" {
		return name
	}
	// filepath.Base turns an empty or directory-only path into "." or "/".
	if base != "" && base != "." && base != "/" {
		return base
	}
	return PlaceholderName
}
