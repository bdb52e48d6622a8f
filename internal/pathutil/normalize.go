package pathutil

import "path/filepath"

// maxLabelLen is the longest label kept verbatim on chart axes.
const maxLabelLen = 15

// Normalize returns a canonical filesystem path string.
// It removes trailing slashes, collapses "." and "..", and
// preserves relative paths when provided.
func Normalize(path string) string {
	if path == "" {
		return path
	}
	return filepath.Clean(path)
}

// ShortLabel returns the basename of label when it is longer than 15
// characters, and label unchanged otherwise.
func ShortLabel(label string) string {
	if len([]rune(label)) <= maxLabelLen {
		return label
	}
	base := filepath.Base(label)
	if base == "." || base == string(filepath.Separator) {
		return label
	}
	return base
}
