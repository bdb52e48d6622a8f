package analysis

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/michaelscutari/fsinfo/internal/report"
	"github.com/michaelscutari/fsinfo/internal/rollup"
	"github.com/michaelscutari/fsinfo/internal/scan"
	"github.com/michaelscutari/fsinfo/internal/volume"
)

// reportMode is the permission of the written report.
const reportMode os.FileMode = 0o644

// StageFunc is called when the run moves to a new stage.
type StageFunc func(stage string)

// Analysis is the outcome of one run.
type Analysis struct {
	Scan       *scan.Result
	Summary    *rollup.Summary
	Volume     *volume.Usage
	ReportPath string

	// ReportErr is set when the report could not be written. The rest of
	// the analysis is still valid.
	ReportErr error
}

// Empty reports whether the scan found no files.
func (a *Analysis) Empty() bool {
	return a == nil || a.Scan == nil || len(a.Scan.Records) == 0
}

// Manager runs scan, aggregation and report writing in sequence.
type Manager struct {
	reportPath string
	skipReport bool
	stageFunc  StageFunc
	logger     *slog.Logger
	now        func() time.Time
}

// NewManager creates a manager writing its report to reportPath.
// An empty reportPath uses report.DefaultFilename.
func NewManager(reportPath string) *Manager {
	if reportPath == "" {
		reportPath = report.DefaultFilename
	}
	return &Manager{
		reportPath: reportPath,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        time.Now,
	}
}

// SetStageFunc sets a callback for stage updates.
func (m *Manager) SetStageFunc(f StageFunc) {
	m.stageFunc = f
}

// SetLogger sets the logger.
func (m *Manager) SetLogger(l *slog.Logger) {
	if l != nil {
		m.logger = l
	}
}

// SetSkipReport disables report writing.
func (m *Manager) SetSkipReport(skip bool) {
	m.skipReport = skip
}

// Run scans root and, when files were found, aggregates them and writes
// the report. An empty scan stops before aggregation and writes nothing.
func (m *Manager) Run(ctx context.Context, root string, opts *scan.ScanOptions) (*Analysis, error) {
	m.stage("scan")
	res, err := scan.NewScanner(opts).Run(ctx, root)
	if err != nil {
		return nil, err
	}

	a := &Analysis{Scan: res}
	if len(res.Records) == 0 {
		m.logger.Info("no files found", "root", res.Root)
		return a, nil
	}

	m.stage("aggregate")
	a.Summary, err = rollup.Build(ctx, res.Records)
	if err != nil {
		return nil, fmt.Errorf("aggregation failed: %w", err)
	}

	if u, err := volume.Stat(ctx, res.Root); err != nil {
		m.logger.Warn("volume usage unavailable", "root", res.Root, "err", err)
	} else {
		a.Volume = u
	}

	if m.skipReport {
		return a, nil
	}

	m.stage("report")
	path, err := m.writeReport(a)
	if err != nil {
		m.logger.Error("failed to write report", "path", m.reportPath, "err", err)
		a.ReportErr = err
		return a, nil
	}
	a.ReportPath = path
	m.logger.Debug("report written", "path", path)

	return a, nil
}

func (m *Manager) stage(s string) {
	if m.stageFunc != nil {
		m.stageFunc(s)
	}
}

// writeReport renders into a temp file next to the target and renames it
// into place so a failed run never leaves a truncated report behind.
func (m *Manager) writeReport(a *Analysis) (string, error) {
	finalPath, err := filepath.Abs(m.reportPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve report path: %w", err)
	}

	dir := filepath.Dir(finalPath)
	tmp, err := os.CreateTemp(dir, ".fsinfo-report-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	tempPath := tmp.Name()

	meta := report.Meta{
		Root:      a.Scan.Root,
		Generated: m.now(),
		Totals:    a.Summary.Totals,
	}
	if err := report.Write(tmp, a.Scan.Records, meta); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return "", err
	}
	// CreateTemp makes the file owner-only; the report is an ordinary file.
	if err := tmp.Chmod(reportMode); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to set report permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to close report file: %w", err)
	}

	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to rename report: %w", err)
	}

	return finalPath, nil
}
