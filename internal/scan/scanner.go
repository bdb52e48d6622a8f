package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/michaelscutari/fsinfo/internal/entry"
	"github.com/michaelscutari/fsinfo/internal/pathutil"
	"github.com/michaelscutari/fsinfo/internal/tree"

	ignore "github.com/sabhiram/go-gitignore"
)

var (
	// ErrNotFound is returned when the scan root does not exist.
	ErrNotFound = errors.New("the specified file path does not exist")

	// ErrNotDirectory is returned when the scan root is not a directory.
	ErrNotDirectory = errors.New("the specified file path is not a directory")

	// ErrTooManyErrors is returned when MaxErrors is reached.
	ErrTooManyErrors = errors.New("too many scan errors")
)

// Result holds everything a scan produced.
type Result struct {
	Root     string
	Records  []entry.FileRecord
	Tree     *tree.Tree
	Errors   []entry.ScanError
	Duration time.Duration
}

// TotalBytes returns the summed apparent size of all records.
func (r *Result) TotalBytes() int64 {
	var total int64
	for _, rec := range r.Records {
		total += rec.Bytes
	}
	return total
}

// Scanner walks a directory tree and collects file records.
type Scanner struct {
	opts    *ScanOptions
	guesser *TypeGuesser
	logger  *slog.Logger

	root       string
	ignores    []ignore.IgnoreParser
	records    []entry.FileRecord
	tree       *tree.Tree
	errors     []entry.ScanError
	totalBytes int64
}

// NewScanner creates a new scanner.
func NewScanner(opts *ScanOptions) *Scanner {
	if opts == nil {
		opts = DefaultOptions()
	}
	logger := opts.Logger
	if logger == nil {
		logger = DefaultOptions().Logger
	}
	return &Scanner{
		opts:    opts,
		guesser: NewTypeGuesser(opts.Sniff),
		logger:  logger,
	}
}

// Run walks root and returns one record per regular file found beneath it.
// The root is checked before traversal begins.
func (s *Scanner) Run(ctx context.Context, root string) (*Result, error) {
	root = pathutil.Normalize(root)

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
		}
		return nil, fmt.Errorf("failed to stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	s.root = root
	s.records = nil
	s.errors = nil
	s.totalBytes = 0
	s.tree = tree.New(root)
	if s.ignores, err = s.loadIgnores(root); err != nil {
		return nil, err
	}

	start := time.Now()
	s.logger.Debug("scan started", "root", root, "sniff", s.opts.Sniff)

	if err := filepath.WalkDir(root, s.walkFunc(ctx)); err != nil {
		return nil, err
	}

	res := &Result{
		Root:     root,
		Records:  s.records,
		Tree:     s.tree,
		Errors:   s.errors,
		Duration: time.Since(start),
	}
	s.report()
	s.logger.Debug("scan finished",
		"root", root,
		"files", len(res.Records),
		"errors", len(res.Errors),
		"took", res.Duration.Round(time.Millisecond))

	return res, nil
}

func (s *Scanner) walkFunc(ctx context.Context) fs.WalkDirFunc {
	return func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err != nil {
			// Second call for a directory whose listing failed, or an
			// entry that vanished between listing and visiting.
			return s.fail(path, err)
		}

		if path != s.root && s.opts.ShouldExclude(path) {
			s.logger.Debug("excluded", "path", path)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path != s.root && s.ignored(path, d.IsDir()) {
			s.logger.Debug("ignored", "path", path)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		return s.visitFile(path, d)
	}
}

// loadIgnores collects the configured ignore rules, plus the root
// .gitignore when enabled and present.
func (s *Scanner) loadIgnores(root string) ([]ignore.IgnoreParser, error) {
	var out []ignore.IgnoreParser
	if s.opts.Ignore != nil {
		out = append(out, s.opts.Ignore)
	}
	if !s.opts.Gitignore {
		return out, nil
	}

	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no .gitignore at root", "root", root)
		return out, nil
	} else if err != nil {
		return nil, fmt.Errorf("error stating %s: %w", path, err)
	}
	p, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, fmt.Errorf("error compiling %s: %w", path, err)
	}
	return append(out, p), nil
}

// ignored matches path, relative to the root, against the ignore rules.
// Directories are also tried with a trailing slash so "dir/" rules apply.
func (s *Scanner) ignored(path string, isDir bool) bool {
	if len(s.ignores) == 0 {
		return false
	}
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, p := range s.ignores {
		if p.MatchesPath(rel) || (isDir && p.MatchesPath(rel+"/")) {
			return true
		}
	}
	return false
}

// fail records a per-entry error and decides whether the walk goes on.
func (s *Scanner) fail(path string, err error) error {
	s.errors = append(s.errors, entry.ScanError{
		Path:    path,
		Message: err.Error(),
	})
	s.logger.Warn("skipping unreadable entry", "path", path, "err", err)

	if s.opts.Strict {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if s.opts.MaxErrors > 0 && len(s.errors) >= s.opts.MaxErrors {
		return fmt.Errorf("%w: stopped after %d", ErrTooManyErrors, len(s.errors))
	}
	return nil
}

func (s *Scanner) report() {
	if s.opts.Progress != nil {
		s.opts.Progress(int64(len(s.records)), int64(len(s.errors)), s.totalBytes)
	}
}
