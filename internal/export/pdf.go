package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF writes headers and rows as a grid table on A4 landscape
func WritePDF(w io.Writer, headers []string, rows [][]any) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right
	colWidth := usable
	if len(headers) > 0 {
		colWidth = usable / float64(len(headers))
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(217, 217, 217)
	for _, header := range headers {
		pdf.CellFormat(colWidth, 8, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		for _, value := range row {
			pdf.CellFormat(colWidth, 7, fmt.Sprint(value), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
