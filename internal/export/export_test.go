package export

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestParseFormat(t *testing.T) {
	if _, err := ParseFormat("excel"); err != nil {
		t.Fatalf("excel should parse: %v", err)
	}
	if _, err := ParseFormat("pdf"); err != nil {
		t.Fatalf("pdf should parse: %v", err)
	}
	if _, err := ParseFormat("csv"); err == nil {
		t.Fatal("csv should be rejected")
	}
}

func TestFilenameShape(t *testing.T) {
	before := time.Now().UnixMilli()
	name := Filename(FormatExcel)
	after := time.Now().UnixMilli()

	re := regexp.MustCompile(`^Report_(\d+)\.xlsx$`)
	m := re.FindStringSubmatch(name)
	if m == nil {
		t.Fatalf("unexpected filename %q", name)
	}
	ts, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		t.Fatalf("timestamp parse: %v", err)
	}
	if ts < before || ts > after {
		t.Fatalf("timestamp %d outside [%d, %d]", ts, before, after)
	}

	if !strings.HasSuffix(Filename(FormatPDF), ".pdf") {
		t.Fatal("pdf filename should end in .pdf")
	}
}

func TestWriteExcelRoundTrip(t *testing.T) {
	headers := []string{"Name", "Brand", "Budget"}
	rows := [][]any{
		{"Summer Launch", "Acme", 5000.0},
		{"Winter Promo", "Globex", 12000.0},
	}

	var buf bytes.Buffer
	if err := WriteExcel(&buf, "Campaigns", headers, rows); err != nil {
		t.Fatalf("WriteExcel: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	if f.GetSheetName(0) != "Campaigns" {
		t.Fatalf("expected sheet Campaigns, got %s", f.GetSheetName(0))
	}

	got, err := f.GetRows("Campaigns")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(got))
	}
	for i, h := range headers {
		if got[0][i] != h {
			t.Fatalf("header %d: expected %q, got %q", i, h, got[0][i])
		}
	}
	if got[1][0] != "Summer Launch" || got[2][1] != "Globex" {
		t.Fatalf("unexpected cell values: %v", got)
	}
}

func TestWritePDFProducesDocument(t *testing.T) {
	var buf bytes.Buffer
	err := WritePDF(&buf, []string{"Name", "Status"}, [][]any{
		{"Summer Launch", "active"},
	})
	if err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output does not look like a PDF")
	}
}

func TestColumnToLetter(t *testing.T) {
	cases := map[int]string{1: "A", 26: "Z", 27: "AA", 52: "AZ", 53: "BA"}
	for col, want := range cases {
		if got := columnToLetter(col); got != want {
			t.Fatalf("column %d: expected %s, got %s", col, want, got)
		}
	}
}
