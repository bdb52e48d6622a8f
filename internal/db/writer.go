package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/michaelscutari/fsinfo/internal/entry"
)

const insertRecordSQL = `INSERT INTO records (folder, name, size_bytes, size_ckb, file_type) VALUES (?, ?, ?, ?, ?)`

const defaultBatchSize = 10000

// Ingester batches records and writes them to the database.
type Ingester struct {
	db        *sql.DB
	batchSize int
	batch     []entry.FileRecord
	written   int64
}

// NewIngester creates a new ingester. A non-positive batchSize uses the default.
func NewIngester(db *sql.DB, batchSize int) *Ingester {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Ingester{
		db:        db,
		batchSize: batchSize,
		batch:     make([]entry.FileRecord, 0, batchSize),
	}
}

// Add queues a record, flushing when the batch is full.
func (ing *Ingester) Add(ctx context.Context, r entry.FileRecord) error {
	ing.batch = append(ing.batch, r)
	if len(ing.batch) >= ing.batchSize {
		return ing.Flush(ctx)
	}
	return nil
}

// Ingest writes all records and flushes.
func (ing *Ingester) Ingest(ctx context.Context, records []entry.FileRecord) error {
	for _, r := range records {
		if err := ing.Add(ctx, r); err != nil {
			return err
		}
	}
	return ing.Flush(ctx)
}

// Written returns the number of records committed so far.
func (ing *Ingester) Written() int64 {
	return ing.written
}

// Flush writes the pending batch in a single transaction.
func (ing *Ingester) Flush(ctx context.Context) error {
	if len(ing.batch) == 0 {
		return nil
	}

	tx, err := ing.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertRecordSQL)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare record statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range ing.batch {
		_, err := stmt.ExecContext(ctx, r.Folder, r.Name, r.Bytes, r.CentiKB(), r.Type.String())
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert record %q: %w", r.Path(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	ing.written += int64(len(ing.batch))
	ing.batch = ing.batch[:0]
	return nil
}
