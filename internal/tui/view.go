package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/michaelscutari/fsinfo/internal/pathutil"
	"github.com/michaelscutari/fsinfo/internal/rollup"
)

const (
	headerHeight  = 3
	maxLabelWidth = 28
	minBarWidth   = 10
	valueWidth    = 14
	colGap        = 2
)

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s - %s", windowTitle, truncateMiddle(m.opts.Root, max(10, m.width-len(windowTitle)-3)))))
	b.WriteString("\n")
	b.WriteString(statsStyle.Render(m.statsLine()))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	help := m.help.View(m.keys)
	if pct := m.viewport.ScrollPercent(); m.viewport.TotalLineCount() > m.viewport.Height {
		help = fmt.Sprintf("%s [%3.0f%%]", help, pct*100)
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func footerHeight(full bool) int {
	if full {
		return 5
	}
	return 2
}

func (m *Model) statsLine() string {
	line := fmt.Sprintf("Files: %s | Apparent: %s",
		FormatCount(m.opts.Totals.Files),
		FormatSize(m.opts.Totals.Bytes),
	)
	if v := m.opts.Volume; v != nil {
		line += fmt.Sprintf(" | Volume: %s of %s used (%.1f%%)",
			FormatSize(int64(v.Used)), FormatSize(int64(v.Total)), v.UsagePercent)
	}
	return line
}

func (m *Model) content() string {
	if m.showTree {
		return m.treeContent()
	}

	charts := make([]string, 0, len(m.opts.Charts))
	for _, g := range m.opts.Charts {
		charts = append(charts, renderChart(g, m.width))
	}
	return strings.Join(charts, "\n\n")
}

func (m *Model) treeContent() string {
	if m.opts.Tree == nil {
		return statsStyle.Render("No tree available.")
	}
	var sb strings.Builder
	if err := m.opts.Tree.Render(&sb); err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return treeStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// renderChart draws one horizontal bar per key, scaled to the largest value.
func renderChart(g rollup.Grouping, width int) string {
	var b strings.Builder
	b.WriteString(chartTitleStyle.Render(g.Title))
	b.WriteString("\n")

	if len(g.Rows) == 0 {
		b.WriteString(statsStyle.Render("(no data)"))
		return b.String()
	}

	labels := make([]string, len(g.Rows))
	labelWidth := 0
	peak := 0.0
	for i, r := range g.Rows {
		labels[i] = truncateRight(pathutil.ShortLabel(r.Key), maxLabelWidth)
		labelWidth = max(labelWidth, lipgloss.Width(labels[i]))
		peak = math.Max(peak, r.Value)
	}

	barWidth := width - labelWidth - valueWidth - colGap*2
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	gap := strings.Repeat(" ", colGap)

	for i, r := range g.Rows {
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(labels[i]))
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString(pad)
		b.WriteString(gap)
		b.WriteString(formatBar(r.Value, peak, barWidth))
		b.WriteString(gap)
		b.WriteString(valueStyle.Render(formatValue(g.Metric, r.Value)))
		if i < len(g.Rows)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func formatBar(value, peak float64, width int) string {
	filled := 0
	if peak > 0 && value > 0 {
		filled = int(math.Round(value / peak * float64(width)))
		if filled < 1 {
			filled = 1
		}
	}
	if filled > width {
		filled = width
	}
	return barFilledStyle.Render(strings.Repeat("█", filled)) + strings.Repeat(" ", width-filled)
}

func formatValue(metric rollup.Metric, v float64) string {
	if metric == rollup.MetricCount {
		return FormatCount(int64(v))
	}
	return FormatKB(v)
}

func truncateRight(s string, maxLen int) string {
	runes := []rune(s)
	if maxLen <= 0 || len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

func truncateMiddle(s string, maxLen int) string {
	runes := []rune(s)
	if maxLen <= 0 || len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	head := (maxLen - 3) / 2
	tail := maxLen - 3 - head
	return string(runes[:head]) + "..." + string(runes[len(runes)-tail:])
}
