package scan

import (
	"mime"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/michaelscutari/fsinfo/internal/entry"
)

// sniffFallback is what mimetype reports when it recognizes nothing.
const sniffFallback = "application/octet-stream"

// TypeGuesser infers a file type label.
type TypeGuesser struct {
	sniff bool
}

// NewTypeGuesser creates a guesser. With sniff set, files with an
// unrecognized extension are identified by their content.
func NewTypeGuesser(sniff bool) *TypeGuesser {
	return &TypeGuesser{sniff: sniff}
}

// Guess returns the type of the file at path. It never fails; anything
// it cannot identify is entry.Unknown.
func (g *TypeGuesser) Guess(path string) entry.FileType {
	if t := ByExtension(path); t.Known() {
		return t
	}
	if !g.sniff {
		return entry.Unknown
	}

	m, err := mimetype.DetectFile(path)
	if err != nil || m.Is(sniffFallback) {
		return entry.Unknown
	}
	return entry.Recognized(stripParams(m.String()))
}

// ByExtension looks the type up from the file extension only.
func ByExtension(path string) entry.FileType {
	ext := filepath.Ext(path)
	if ext == "" {
		return entry.Unknown
	}
	return entry.Recognized(stripParams(mime.TypeByExtension(ext)))
}

// stripParams drops MIME parameters such as "; charset=utf-8".
func stripParams(v string) string {
	if v == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(v)
	if err != nil {
		return ""
	}
	return mediaType
}
