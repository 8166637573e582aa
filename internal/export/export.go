// Package export renders selected table rows into downloadable report
// files. Reports are always built from the selected, filtered rows and
// the applied visible columns of a list view.
package export

import (
	"fmt"
	"time"
)

// Format is a supported report file format
type Format string

const (
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)

// ParseFormat validates a requested format
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatExcel:
		return FormatExcel, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unsupported export format: %q", s)
}

// ContentType returns the MIME type for download responses
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Filename returns the report file name: Report_<unix ms> plus the
// format's extension.
func Filename(format Format) string {
	ext := "xlsx"
	if format == FormatPDF {
		ext = "pdf"
	}
	return fmt.Sprintf("Report_%d.%s", time.Now().UnixMilli(), ext)
}
