package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/michaelscutari/fsinfo/internal/entry"
)

// visitFile stats a non-directory entry and records it when it resolves
// to a regular file.
func (s *Scanner) visitFile(path string, d fs.DirEntry) error {
	// Stat follows symlinks so linked files are recorded with their target size.
	info, err := os.Stat(path)
	if err != nil {
		return s.fail(path, err)
	}

	kind := entry.KindFromMode(info.Mode())
	if kind != entry.KindFile {
		s.logger.Debug("skipping non-regular entry", "path", path, "kind", kind)
		return nil
	}

	folder := filepath.Dir(path)
	name := d.Name()

	rec := entry.NewFileRecord(folder, name, info.Size(), s.guesser.Guess(path))
	if _, err := s.tree.AddFile(folder, name); err != nil {
		return fmt.Errorf("failed to index %s: %w", path, err)
	}
	s.records = append(s.records, rec)
	s.totalBytes += rec.Bytes

	if every := s.opts.ProgressEvery; every > 0 && len(s.records)%every == 0 {
		s.report()
	}
	return nil
}
