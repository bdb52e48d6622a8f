package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/michaelscutari/fsinfo/internal/entry"
)

// Column is a groupable records column.
type Column string

const (
	ColumnType   Column = "file_type"
	ColumnFolder Column = "folder"
)

func (c Column) valid() bool {
	return c == ColumnType || c == ColumnFolder
}

// KeyValue is one row of a grouped query.
type KeyValue struct {
	Key   string
	Value int64
}

// SumByColumn returns the summed size (hundredths of KB) per key, ordered by key.
func SumByColumn(ctx context.Context, db *sql.DB, col Column) ([]KeyValue, error) {
	if !col.valid() {
		return nil, fmt.Errorf("invalid group column %q", col)
	}
	query := fmt.Sprintf(`
		SELECT %[1]s, COALESCE(SUM(size_ckb), 0)
		FROM records
		GROUP BY %[1]s
		ORDER BY %[1]s ASC
	`, col)
	return queryKeyValues(ctx, db, query)
}

// CountByColumn returns the record count per key, largest first.
func CountByColumn(ctx context.Context, db *sql.DB, col Column) ([]KeyValue, error) {
	if !col.valid() {
		return nil, fmt.Errorf("invalid group column %q", col)
	}
	query := fmt.Sprintf(`
		SELECT %[1]s, COUNT(*) AS cnt
		FROM records
		GROUP BY %[1]s
		ORDER BY cnt DESC, %[1]s ASC
	`, col)
	return queryKeyValues(ctx, db, query)
}

func queryKeyValues(ctx context.Context, db *sql.DB, query string) ([]KeyValue, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var out []KeyValue
	for rows.Next() {
		var kv KeyValue
		if err := rows.Scan(&kv.Key, &kv.Value); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		out = append(out, kv)
	}

	return out, rows.Err()
}

// Totals returns whole-table counters.
func Totals(ctx context.Context, db *sql.DB) (entry.Totals, error) {
	var t entry.Totals
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(size_bytes), 0), COALESCE(SUM(size_ckb), 0)
		FROM records
	`).Scan(&t.Files, &t.Bytes, &t.CentiKB)
	if err != nil {
		return entry.Totals{}, fmt.Errorf("failed to read totals: %w", err)
	}
	return t, nil
}
