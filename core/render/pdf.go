// Package render — PDF renderer.
// Lays the records out as a bordered table using gofpdf. Column widths are
// proportional to the longest cell in each column; long cells are cut to
// fit their column.
package render

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/tablepipe/core"
	"github.com/gaurav-prasanna/tablepipe/core/table"
)

const (
	pdfFontSize   = 8.0
	pdfLineHeight = 5.0
	pdfMargin     = 10.0
)

// PDFRenderer renders records as a PDF table.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts records into PDF bytes.
func (r *PDFRenderer) Render(records []table.Record, meta core.DocumentMetadata) ([]byte, error) {
	cols := columnsOf(records, meta)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title from metadata.
	title := meta.Command
	if title == "" {
		title = "table"
	}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 7, tr(title), "", "L", false)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 4, tr(fmt.Sprintf("Source: %s  |  %d records", meta.Source, len(records))), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	if len(cols) == 0 {
		return output(pdf)
	}

	pageW, _ := pdf.GetPageSize()
	widths := columnWidths(records, cols, pageW-2*pdfMargin)

	header := func() {
		pdf.SetFont("Helvetica", "B", pdfFontSize)
		pdf.SetFillColor(230, 230, 230)
		for i, c := range cols {
			pdf.CellFormat(widths[i], pdfLineHeight+1, tr(fit(pdf, c, widths[i])), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", pdfFontSize)
	}
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	})
	header()

	for _, rec := range records {
		for i, c := range cols {
			v, _ := rec.Get(c)
			pdf.CellFormat(widths[i], pdfLineHeight, tr(fit(pdf, v, widths[i])), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return output(pdf)
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidths splits total across columns in proportion to the longest
// cell (header included) of each column.
func columnWidths(records []table.Record, cols []string, total float64) []float64 {
	longest := make([]int, len(cols))
	sum := 0
	for i, c := range cols {
		longest[i] = utf8.RuneCountInString(c)
		for _, rec := range records {
			v, _ := rec.Get(c)
			if n := utf8.RuneCountInString(v); n > longest[i] {
				longest[i] = n
			}
		}
		if longest[i] < 3 {
			longest[i] = 3
		}
		sum += longest[i]
	}

	widths := make([]float64, len(cols))
	for i, n := range longest {
		widths[i] = total * float64(n) / float64(sum)
	}
	return widths
}

// fit cuts s so that it fits in width millimeters with a little padding.
func fit(pdf *gofpdf.Fpdf, s string, width float64) string {
	const pad = 2.0
	if pdf.GetStringWidth(s) <= width-pad {
		return s
	}
	rs := []rune(s)
	for len(rs) > 0 && pdf.GetStringWidth(string(rs)+"...") > width-pad {
		rs = rs[:len(rs)-1]
	}
	return string(rs) + "..."
}
