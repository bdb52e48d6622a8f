package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/michaelscutari/fsinfo/internal/entry"
)

func TestByExtension(t *testing.T) {
	if got := ByExtension("/x/readme.txt"); got.String() != "text/plain" {
		t.Fatalf("txt: got %q", got)
	}
	if got := ByExtension("/x/page.HTML"); got.String() != "text/html" {
		t.Fatalf("html: got %q", got)
	}
	if got := ByExtension("/x/Makefile"); got != entry.Unknown {
		t.Fatalf("no extension: got %q", got)
	}
	if got := ByExtension("/x/file.zz-not-a-type"); got != entry.Unknown {
		t.Fatalf("bogus extension: got %q", got)
	}
}

func TestGuessSniffsContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image")
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	if err := os.WriteFile(path, png, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := NewTypeGuesser(false).Guess(path); got != entry.Unknown {
		t.Fatalf("extension-only guess should be Unknown, got %q", got)
	}
	if got := NewTypeGuesser(true).Guess(path); got.String() != "image/png" {
		t.Fatalf("sniffed guess: got %q", got)
	}
}

func TestGuessSniffFallbackIsUnknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise")
	if err := os.WriteFile(path, []byte{0x00, 0x01, 0xfe, 0xff, 0x00, 0x13}, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := NewTypeGuesser(true).Guess(path); got != entry.Unknown {
		t.Fatalf("expected Unknown, got %q", got)
	}
}
