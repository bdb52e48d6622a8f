package rollup

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/michaelscutari/fsinfo/internal/db"
	"github.com/michaelscutari/fsinfo/internal/entry"
)

// Metric says how a grouping's values were derived.
type Metric int

const (
	MetricSizeKB Metric = iota
	MetricCount
)

func (m Metric) String() string {
	if m == MetricCount {
		return "count"
	}
	return "size_kb"
}

// Row is one key of a grouping.
type Row struct {
	Key   string
	Value float64
}

// Grouping maps keys to a summed size or a count.
type Grouping struct {
	Title  string
	Metric Metric
	Rows   []Row
}

// Total returns the sum of all values.
func (g Grouping) Total() float64 {
	var total float64
	for _, r := range g.Rows {
		total += r.Value
	}
	return total
}

// Value returns the value for key and whether it exists.
func (g Grouping) Value(key string) (float64, bool) {
	for _, r := range g.Rows {
		if r.Key == key {
			return r.Value, true
		}
	}
	return 0, false
}

// Summary holds every grouping of one scan.
type Summary struct {
	SizeByType    Grouping
	CountByFolder Grouping
	CountByType   Grouping
	SizeByFolder  Grouping
	Totals        entry.Totals
}

// Empty reports whether the summary covers no records.
func (s *Summary) Empty() bool {
	return s == nil || s.Totals.Files == 0
}

// Charts returns the five chart framings in display order.
func (s *Summary) Charts() []Grouping {
	typeDist := s.SizeByType
	typeDist.Title = "File Type-Wise Size Distribution"
	return []Grouping{
		s.SizeByType,
		s.CountByFolder,
		s.CountByType,
		s.SizeByFolder,
		typeDist,
	}
}

func emptySummary() *Summary {
	return &Summary{
		SizeByType:    Grouping{Title: "File Size Distribution By Type", Metric: MetricSizeKB},
		CountByFolder: Grouping{Title: "File Count Per Folder", Metric: MetricCount},
		CountByType:   Grouping{Title: "File Type Count", Metric: MetricCount},
		SizeByFolder:  Grouping{Title: "Folder-Wise File Size", Metric: MetricSizeKB},
	}
}

// Build loads records into a scratch database and computes all groupings.
// It has no side effects beyond that database, which is discarded.
func Build(ctx context.Context, records []entry.FileRecord) (*Summary, error) {
	s := emptySummary()
	if len(records) == 0 {
		return s, nil
	}

	database, err := db.Open()
	if err != nil {
		return nil, err
	}
	defer database.Close()

	if err := db.NewIngester(database, 0).Ingest(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	if err := db.BuildIndexes(database); err != nil {
		return nil, err
	}

	steps := []struct {
		g     *Grouping
		col   db.Column
		query func(context.Context, *sql.DB, db.Column) ([]db.KeyValue, error)
	}{
		{&s.SizeByType, db.ColumnType, db.SumByColumn},
		{&s.CountByFolder, db.ColumnFolder, db.CountByColumn},
		{&s.CountByType, db.ColumnType, db.CountByColumn},
		{&s.SizeByFolder, db.ColumnFolder, db.SumByColumn},
	}
	for _, step := range steps {
		kvs, err := step.query(ctx, database, step.col)
		if err != nil {
			return nil, fmt.Errorf("failed to compute %q: %w", step.g.Title, err)
		}
		step.g.Rows = toRows(kvs, step.g.Metric)
	}

	if s.Totals, err = db.Totals(ctx, database); err != nil {
		return nil, err
	}

	return s, nil
}

func toRows(kvs []db.KeyValue, metric Metric) []Row {
	rows := make([]Row, len(kvs))
	for i, kv := range kvs {
		v := float64(kv.Value)
		if metric == MetricSizeKB {
			v /= 100
		}
		rows[i] = Row{Key: kv.Key, Value: v}
	}
	return rows
}
