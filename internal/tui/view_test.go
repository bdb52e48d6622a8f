package tui

import (
	"strings"
	"testing"

	"github.com/michaelscutari/fsinfo/internal/entry"
	"github.com/michaelscutari/fsinfo/internal/rollup"
	"github.com/michaelscutari/fsinfo/internal/tree"

	tea "github.com/charmbracelet/bubbletea"
)

func sampleOptions() Options {
	tr := tree.New("/data")
	tr.AddFile("/data/projects/reports", "q1.txt")

	return Options{
		Root: "/data",
		Charts: []rollup.Grouping{
			{
				Title:  "File Count Per Folder",
				Metric: rollup.MetricCount,
				Rows: []rollup.Row{
					{Key: "/data/projects/reports", Value: 4},
					{Key: "/data", Value: 1},
				},
			},
			{
				Title:  "File Size Distribution By Type",
				Metric: rollup.MetricSizeKB,
				Rows:   []rollup.Row{{Key: "text/plain", Value: 2.5}},
			},
		},
		Tree:   tr,
		Totals: entry.Totals{Files: 5, Bytes: 4096},
	}
}

func TestRenderChartShortensLongLabels(t *testing.T) {
	out := renderChart(sampleOptions().Charts[0], 80)

	if !strings.Contains(out, "File Count Per Folder") {
		t.Fatalf("missing title:\n%s", out)
	}
	if strings.Contains(out, "/data/projects/reports") || !strings.Contains(out, "reports") {
		t.Fatalf("long label should be shortened to its basename:\n%s", out)
	}
	if !strings.Contains(out, "/data") {
		t.Fatalf("short label should be kept:\n%s", out)
	}
	if strings.Count(out, "\n") != 3 {
		t.Fatalf("expected title rule plus one line per row:\n%s", out)
	}
}

func TestFormatBar(t *testing.T) {
	if got := formatBar(5, 10, 10); strings.Count(got, "█") != 5 {
		t.Fatalf("half bar: %q", got)
	}
	if got := formatBar(0.001, 10, 10); strings.Count(got, "█") != 1 {
		t.Fatalf("tiny values still get one block: %q", got)
	}
	if got := formatBar(0, 10, 10); strings.Contains(got, "█") {
		t.Fatalf("zero should be empty: %q", got)
	}
}

func TestModelResizeAndToggleTree(t *testing.T) {
	m := NewModel(sampleOptions())
	if m.View() != "Loading..." {
		t.Fatalf("view before sizing should be a placeholder")
	}

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.View()
	if !strings.Contains(view, "File Size Distribution By Type") {
		t.Fatalf("charts missing from view:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if !m.showTree {
		t.Fatalf("t should switch to the tree")
	}
	if view := m.View(); !strings.Contains(view, "q1.txt") {
		t.Fatalf("tree missing from view:\n%s", view)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(sampleOptions())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncateRight("abcdefghij", 6); got != "abc..." {
		t.Fatalf("truncateRight: %q", got)
	}
	if got := truncateMiddle("/very/long/path/name", 11); got != "/ver...name" {
		t.Fatalf("truncateMiddle: %q", got)
	}
}

func TestFormatKBMatchesReport(t *testing.T) {
	if got := FormatKB(2); got != "2.0 KB" {
		t.Fatalf("FormatKB(2) = %q", got)
	}
	if got := formatValue(rollup.MetricSizeKB, 0.12); got != "0.12 KB" {
		t.Fatalf("size value = %q", got)
	}
	if got := formatValue(rollup.MetricCount, 1234); got != "1,234" {
		t.Fatalf("count value = %q", got)
	}
}
