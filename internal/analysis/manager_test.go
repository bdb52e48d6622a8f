package analysis

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/michaelscutari/fsinfo/internal/scan"
)

func TestManagerRunWritesReport(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "file.txt"), make([]byte, 2048), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "blob"), make([]byte, 512), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	outDir := t.TempDir()
	mgr := NewManager(filepath.Join(outDir, "report.pdf"))

	var stages []string
	mgr.SetStageFunc(func(s string) { stages = append(stages, s) })

	a, err := mgr.Run(context.Background(), root, scan.DefaultOptions())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if a.Empty() || a.ReportErr != nil {
		t.Fatalf("unexpected analysis: empty=%v reportErr=%v", a.Empty(), a.ReportErr)
	}
	if len(stages) != 3 || stages[0] != "scan" || stages[2] != "report" {
		t.Fatalf("unexpected stages: %v", stages)
	}

	data, err := os.ReadFile(a.ReportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if len(data) < 5 || string(data[:5]) != "%PDF-" {
		t.Fatalf("report is not a pdf")
	}

	info, err := os.Stat(a.ReportPath)
	if err != nil {
		t.Fatalf("stat report: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0o644 {
		t.Fatalf("report mode = %v, want 0644", info.Mode().Perm())
	}

	leftovers, _ := filepath.Glob(filepath.Join(outDir, ".fsinfo-report-*"))
	if len(leftovers) != 0 {
		t.Fatalf("temp files left behind: %v", leftovers)
	}

	if v, ok := a.Summary.SizeByType.Value("text/plain"); !ok || v != 2.0 {
		t.Fatalf("text/plain size: %v %v", v, ok)
	}
	if v, ok := a.Summary.CountByFolder.Value(a.Scan.Root); !ok || v != 2 {
		t.Fatalf("folder count: %v %v", v, ok)
	}
}

func TestManagerRunEmptyWritesNothing(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "report.pdf")

	a, err := NewManager(out).Run(context.Background(), root, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !a.Empty() || a.Summary != nil {
		t.Fatalf("expected empty analysis without summary")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("report should not exist, stat err=%v", err)
	}
}

func TestManagerRunMissingRoot(t *testing.T) {
	var stages []string
	mgr := NewManager(filepath.Join(t.TempDir(), "report.pdf"))
	mgr.SetStageFunc(func(s string) { stages = append(stages, s) })

	_, err := mgr.Run(context.Background(), filepath.Join(t.TempDir(), "missing"), nil)
	if !errors.Is(err, scan.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(stages) != 1 {
		t.Fatalf("aggregation must not start, stages=%v", stages)
	}
}

func TestManagerReportFailureIsNonFatal(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.txt"), []byte("hi"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	out := filepath.Join(t.TempDir(), "no-such-dir", "report.pdf")
	a, err := NewManager(out).Run(context.Background(), root, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if a.ReportErr == nil || a.ReportPath != "" {
		t.Fatalf("expected report error, got path=%q err=%v", a.ReportPath, a.ReportErr)
	}
	if a.Summary == nil || a.Summary.Totals.Files != 1 {
		t.Fatalf("summary should survive a report failure: %+v", a.Summary)
	}
}

func TestManagerSkipReport(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.txt"), []byte("hi"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	out := filepath.Join(t.TempDir(), "report.pdf")
	mgr := NewManager(out)
	mgr.SetSkipReport(true)
	a, err := mgr.Run(context.Background(), root, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if a.ReportPath != "" {
		t.Fatalf("report should be skipped")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("report file should not exist")
	}
}
