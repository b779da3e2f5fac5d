package services

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/phpdave11/gofpdf"
)

// PdfExporter renders a report table to a PDF file under Dir and returns
// the file path.
type PdfExporter struct {
	Dir string
}

var reportColWidths = []float64{22, 115, 50, 50, 40}

func (e PdfExporter) Export(title string, idUsuario int64, table ReportTable) (string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(title), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)

	writeHeader(pdf, tr, table)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range table.Rows {
		if pdf.GetY() > 185 {
			pdf.AddPage()
			writeHeader(pdf, tr, table)
			pdf.SetFont("Helvetica", "", 9)
		}
		for i, cell := range row {
			align := table.Aligns[i]
			if align == "" {
				align = "L"
			}
			pdf.CellFormat(colWidth(i), 6, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	path := filepath.Join(e.Dir, fmt.Sprintf("relatorio-produto-%d-%d.pdf", idUsuario, time.Now().UnixNano()))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}

func writeHeader(pdf *gofpdf.Fpdf, tr func(string) string, table ReportTable) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, col := range table.Columns {
		pdf.CellFormat(colWidth(i), 7, tr(col), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func colWidth(i int) float64 {
	if i < len(reportColWidths) {
		return reportColWidths[i]
	}
	return 40
}
