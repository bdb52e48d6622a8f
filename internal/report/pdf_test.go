package report

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/michaelscutari/fsinfo/internal/entry"
)

func TestWriteProducesPDF(t *testing.T) {
	records := []entry.FileRecord{
		entry.NewFileRecord("/root", "notes.txt", 2048, entry.Recognized("text/plain")),
		entry.NewFileRecord("/root", "café", 512, entry.Unknown),
	}

	var buf bytes.Buffer
	meta := Meta{Root: "/root", Generated: time.Unix(0, 0), Totals: entry.Totals{Files: 2, Bytes: 2560}}
	if err := Write(&buf, records, meta); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a pdf: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestBuildPaginates(t *testing.T) {
	if pages := build(nil, Meta{}).PageCount(); pages != 1 {
		t.Fatalf("empty report should have 1 page, got %d", pages)
	}

	var records []entry.FileRecord
	for i := 0; i < 50; i++ {
		records = append(records, entry.NewFileRecord("/root", fmt.Sprintf("f%02d", i), 1024, entry.Unknown))
	}

	pdf := build(records, Meta{})
	if err := pdf.Error(); err != nil {
		t.Fatalf("pdf error: %v", err)
	}
	// 45mm per block on a 297mm page with a 15mm bottom margin.
	if pages := pdf.PageCount(); pages < 5 {
		t.Fatalf("expected the report to span several pages, got %d", pages)
	}
}
