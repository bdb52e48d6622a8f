package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/michaelscutari/fsinfo/internal/analysis"
	"github.com/michaelscutari/fsinfo/internal/rollup"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query [path]",
	Short: "Print one grouping as a table",
	Long:  `Scan a directory and print size or count per type or per folder for scripting. No report is written.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runQuery,
}

var (
	queryBy     string
	queryMetric string
	queryLimit  int
)

func init() {
	queryCmd.Flags().StringVarP(&queryBy, "by", "b", "type", "Group by: type, folder")
	queryCmd.Flags().StringVarP(&queryMetric, "metric", "m", "size", "Metric: size, count")
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "n", 0, "Maximum number of rows (0 = all)")
}

func runQuery(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	s := loadSettings(cfg)
	logger := newLogger(s.Verbose)
	opts, err := s.scanOptions(logger)
	if err != nil {
		return err
	}

	mgr := analysis.NewManager(s.ReportPath)
	mgr.SetLogger(logger)
	mgr.SetSkipReport(true)

	a, err := mgr.Run(cmd.Context(), root, opts)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	if a.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), "No files found in the specified directory.")
		return nil
	}

	g, err := selectGrouping(a.Summary, queryBy, queryMetric)
	if err != nil {
		return err
	}
	return writeTable(cmd.OutOrStdout(), g, queryLimit)
}

func selectGrouping(s *rollup.Summary, by, metric string) (rollup.Grouping, error) {
	switch {
	case by == "type" && metric == "size":
		return s.SizeByType, nil
	case by == "type" && metric == "count":
		return s.CountByType, nil
	case by == "folder" && metric == "size":
		return s.SizeByFolder, nil
	case by == "folder" && metric == "count":
		return s.CountByFolder, nil
	}
	if by != "type" && by != "folder" {
		return rollup.Grouping{}, fmt.Errorf("invalid group %q (expected type|folder)", by)
	}
	return rollup.Grouping{}, fmt.Errorf("invalid metric %q (expected size|count)", metric)
}

func writeTable(out io.Writer, g rollup.Grouping, limit int) error {
	rows := g.Rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if g.Metric == rollup.MetricCount {
		fmt.Fprintf(w, "FILES\tKEY\n")
	} else {
		fmt.Fprintf(w, "SIZE (KB)\tKEY\n")
	}
	for _, r := range rows {
		if g.Metric == rollup.MetricCount {
			fmt.Fprintf(w, "%s\t%s\n", humanize.Comma(int64(r.Value)), r.Key)
		} else {
			fmt.Fprintf(w, "%s\t%s\n", humanize.CommafWithDigits(r.Value, 2), r.Key)
		}
	}
	return w.Flush()
}
