package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteExcel writes headers and rows as a single-sheet workbook
func WriteExcel(w io.Writer, sheet string, headers []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"D9D9D9"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%s1", columnToLetter(i+1))
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	if len(headers) > 0 {
		first := fmt.Sprintf("%s1", columnToLetter(1))
		last := fmt.Sprintf("%s1", columnToLetter(len(headers)))
		if err := f.SetCellStyle(sheet, first, last, headerStyle); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
	}

	for r, row := range rows {
		for c, value := range row {
			cell := fmt.Sprintf("%s%d", columnToLetter(c+1), r+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// columnToLetter converts a 1-based column index to its letter name
func columnToLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
