// Package report writes the PDF summary of a scan.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-pdf/fpdf"
	"github.com/michaelscutari/fsinfo/internal/entry"
)

// DefaultFilename is the report name used when none is configured.
const DefaultFilename = "file_analysis_report.pdf"

const (
	title      = "File Analysis Report"
	fontFamily = "Arial"
	fontSize   = 12
	cellWidth  = 200
	lineHeight = 10
	pageMargin = 15
	blockGap   = 5
)

// Meta describes the scan a report covers.
type Meta struct {
	Root      string
	Generated time.Time
	Totals    entry.Totals
}

// Write renders records as a PDF to w.
func Write(w io.Writer, records []entry.FileRecord, meta Meta) error {
	pdf := build(records, meta)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// build lays out the document: a title, a summary line, then one
// four-line block per record. Pages break automatically.
func build(records []entry.FileRecord, meta Meta) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetCreator("fsinfo", true)
	if !meta.Generated.IsZero() {
		pdf.SetCreationDate(meta.Generated)
	}
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", fontSize)

	// Core fonts are cp1252; paths are UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	line := func(txt string) {
		pdf.CellFormat(cellWidth, lineHeight, tr(txt), "", 1, "", false, 0, "")
	}

	pdf.CellFormat(cellWidth, lineHeight, title, "", 1, "C", false, 0, "")
	if meta.Root != "" {
		line(fmt.Sprintf("Root: %s | Files: %s | Total: %s",
			meta.Root,
			humanize.Comma(meta.Totals.Files),
			humanize.IBytes(uint64(meta.Totals.Bytes))))
	}
	pdf.Ln(lineHeight)

	for _, r := range records {
		line("Folder: " + r.Folder)
		line("File Name: " + r.Name)
		line("File Size (KB): " + entry.FormatKB(r.SizeKB))
		line("File Type: " + r.Type.String())
		pdf.Ln(blockGap)
	}

	return pdf
}

