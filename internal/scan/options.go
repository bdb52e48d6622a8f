package scan

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"

	ignore "github.com/sabhiram/go-gitignore"
)

// ProgressFunc is called while scanning with running counters.
type ProgressFunc func(files, errors int64, totalBytes int64)

// ScanOptions configures the scanning behavior.
type ScanOptions struct {
	// Sniff enables content sniffing for files whose extension is not recognized.
	Sniff bool

	// Strict aborts the scan on the first entry that cannot be read.
	Strict bool

	// MaxErrors is the maximum number of errors before aborting.
	// Zero means unlimited.
	MaxErrors int

	// ExcludePatterns are regular expressions for paths to skip.
	ExcludePatterns []*regexp.Regexp

	// Ignore holds gitignore-style rules matched against paths relative
	// to the scan root.
	Ignore ignore.IgnoreParser

	// Gitignore also applies the .gitignore found at the scan root.
	Gitignore bool

	// ProgressEvery is the number of files between progress callbacks.
	ProgressEvery int

	Progress ProgressFunc
	Logger   *slog.Logger
}

// DefaultOptions returns sensible defaults for scanning.
func DefaultOptions() *ScanOptions {
	return &ScanOptions{
		ProgressEvery: 256,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSniff sets content sniffing.
func (o *ScanOptions) WithSniff(sniff bool) *ScanOptions {
	o.Sniff = sniff
	return o
}

// WithStrict sets abort-on-first-error behavior.
func (o *ScanOptions) WithStrict(strict bool) *ScanOptions {
	o.Strict = strict
	return o
}

// WithMaxErrors sets the maximum error count.
func (o *ScanOptions) WithMaxErrors(n int) *ScanOptions {
	o.MaxErrors = n
	return o
}

// WithLogger sets the logger used for skipped entries.
func (o *ScanOptions) WithLogger(l *slog.Logger) *ScanOptions {
	if l != nil {
		o.Logger = l
	}
	return o
}

// WithProgress sets the progress callback.
func (o *ScanOptions) WithProgress(f ProgressFunc) *ScanOptions {
	o.Progress = f
	return o
}

// AddExcludePattern adds a pattern to exclude.
func (o *ScanOptions) AddExcludePattern(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	o.ExcludePatterns = append(o.ExcludePatterns, re)
	return nil
}

// WithGitignore sets whether the root .gitignore is honored.
func (o *ScanOptions) WithGitignore(on bool) *ScanOptions {
	o.Gitignore = on
	return o
}

// SetIgnoreFile compiles gitignore-style rules from path.
func (o *ScanOptions) SetIgnoreFile(path string) error {
	p, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return fmt.Errorf("error compiling ignore file %s: %w", path, err)
	}
	o.Ignore = p
	return nil
}

// SetIgnoreLines compiles gitignore-style rules from lines.
func (o *ScanOptions) SetIgnoreLines(lines ...string) {
	o.Ignore = ignore.CompileIgnoreLines(lines...)
}

// ShouldExclude checks if a path matches any exclude pattern.
func (o *ScanOptions) ShouldExclude(path string) bool {
	for _, re := range o.ExcludePatterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
