package listview

import (
	"testing"
)

type testRow struct {
	id     string
	name   string
	status string
	budget float64
}

func (r testRow) RowID() string { return r.id }

func (r testRow) Field(key string) any {
	switch key {
	case "id":
		return r.id
	case "name":
		return r.name
	case "status":
		return r.status
	case "budget":
		return r.budget
	}
	return nil
}

func testColumns() []Column {
	return []Column{
		{Key: "id", Label: "ID"},
		{Key: "name", Label: "Name"},
		{Key: "status", Label: "Status"},
		{Key: "budget", Label: "Budget"},
	}
}

func testKinds() map[string]FilterKind {
	return map[string]FilterKind{
		"name":   Text,
		"status": Enum,
	}
}

func loadedView(t *testing.T) *View {
	t.Helper()
	v := New(testColumns(), testKinds())
	v.Load([]Row{
		testRow{id: "1", name: "Summer Launch", status: "active", budget: 5000},
		testRow{id: "2", name: "Winter Promo", status: "done", budget: 12000},
		testRow{id: "3", name: "Summer Clearance", status: "active", budget: 800},
		testRow{id: "4", name: "Brand Refresh", status: "upcoming", budget: 2500},
	})
	return v
}

func rowIDs(rows []Row) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.RowID()
	}
	return ids
}

func TestTextFilterMatchesSubstringCaseInsensitive(t *testing.T) {
	v := loadedView(t)
	if err := v.SetFilter("name", "summer"); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}

	got := rowIDs(v.Rows())
	want := []string{"1", "3"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestEnumFilterMatchesExactly(t *testing.T) {
	v := loadedView(t)
	if err := v.SetFilter("status", "active"); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}
	if got := len(v.Rows()); got != 2 {
		t.Fatalf("expected 2 active rows, got %d", got)
	}

	// "act" is not an exact status value
	if err := v.SetFilter("status", "act"); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}
	if got := len(v.Rows()); got != 0 {
		t.Fatalf("expected 0 rows for partial enum value, got %d", got)
	}
}

func TestSetFilterRejectsUnfilterableField(t *testing.T) {
	v := loadedView(t)
	if err := v.SetFilter("budget", "5000"); err == nil {
		t.Fatal("expected error for unfilterable field")
	}
}

func TestEmptyFilterValueClears(t *testing.T) {
	v := loadedView(t)
	if err := v.SetFilter("name", "summer"); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}
	if err := v.SetFilter("name", ""); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}
	if got := len(v.Rows()); got != 4 {
		t.Fatalf("expected all 4 rows after clearing filter, got %d", got)
	}
	if got := len(v.Filters()); got != 0 {
		t.Fatalf("expected no active filters, got %d", got)
	}
}

func TestSortToggling(t *testing.T) {
	v := loadedView(t)

	v.SortBy("budget")
	got := rowIDs(v.Rows())
	if got[0] != "3" || got[3] != "2" {
		t.Fatalf("expected ascending budget order [3 1 4 2]-ish, got %v", got)
	}
	if s := v.SortState(); s.Direction != Ascending {
		t.Fatalf("expected ascending, got %s", s.Direction)
	}

	// Same field again flips to descending
	v.SortBy("budget")
	got = rowIDs(v.Rows())
	if got[0] != "2" || got[3] != "3" {
		t.Fatalf("expected descending budget order, got %v", got)
	}

	// A new field resets to ascending
	v.SortBy("name")
	if s := v.SortState(); s.Field != "name" || s.Direction != Ascending {
		t.Fatalf("expected name/asc, got %+v", s)
	}

	// And back on the old field it starts ascending again
	v.SortBy("budget")
	if s := v.SortState(); s.Direction != Ascending {
		t.Fatalf("expected ascending after switching back, got %s", s.Direction)
	}
}

func TestSelectAllIsFilterRelative(t *testing.T) {
	v := loadedView(t)
	if err := v.SetFilter("status", "active"); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}

	v.ToggleSelectAll()
	ids := v.SelectedIDs()
	if len(ids) != 2 {
		t.Fatalf("expected exactly the filtered rows selected, got %v", ids)
	}
	for _, id := range ids {
		if id != "1" && id != "3" {
			t.Fatalf("unexpected selected id %s", id)
		}
	}

	// When everything filtered is already selected, the toggle clears
	v.ToggleSelectAll()
	if ids := v.SelectedIDs(); len(ids) != 0 {
		t.Fatalf("expected cleared selection, got %v", ids)
	}
}

func TestSelectionIntersectsFilters(t *testing.T) {
	v := loadedView(t)
	v.ToggleRow("1")
	v.ToggleRow("2")

	if err := v.SetFilter("status", "active"); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}

	// Row 2 is selected but filtered out, so it is invisible to
	// SelectedIDs and the export set.
	ids := v.SelectedIDs()
	if len(ids) != 1 || ids[0] != "1" {
		t.Fatalf("expected only row 1, got %v", ids)
	}

	// Clearing the filter brings it back
	v.ClearFilters()
	if ids := v.SelectedIDs(); len(ids) != 2 {
		t.Fatalf("expected both rows after clearing filters, got %v", ids)
	}
}

func TestExportSetRequiresSelection(t *testing.T) {
	v := loadedView(t)
	if _, _, err := v.ExportSet(); err != ErrEmptySelection {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
}

func TestExportSetUsesAppliedColumnsNotDraft(t *testing.T) {
	v := loadedView(t)
	v.ToggleRow("1")

	// Stage hiding the budget column without applying
	if err := v.StageColumn("budget", false); err != nil {
		t.Fatalf("StageColumn: %v", err)
	}

	headers, rows, err := v.ExportSet()
	if err != nil {
		t.Fatalf("ExportSet: %v", err)
	}
	if len(headers) != 4 {
		t.Fatalf("staged change leaked into export, headers: %v", headers)
	}
	if len(rows) != 1 || len(rows[0]) != 4 {
		t.Fatalf("unexpected export shape: %v", rows)
	}

	// Applying commits the change
	v.ApplyColumns()
	headers, _, err = v.ExportSet()
	if err != nil {
		t.Fatalf("ExportSet: %v", err)
	}
	if len(headers) != 3 {
		t.Fatalf("expected budget column hidden, headers: %v", headers)
	}
	for _, h := range headers {
		if h == "Budget" {
			t.Fatal("budget header still present after apply")
		}
	}
}

func TestDiscardColumnsRevertsDraft(t *testing.T) {
	v := loadedView(t)
	if err := v.StageColumn("name", false); err != nil {
		t.Fatalf("StageColumn: %v", err)
	}
	v.DiscardColumns()
	v.ApplyColumns()

	if got := len(v.VisibleColumns()); got != 4 {
		t.Fatalf("expected all columns visible after discard, got %d", got)
	}
}

func TestExportSetRejectsAllColumnsHidden(t *testing.T) {
	v := loadedView(t)
	v.ToggleRow("1")
	for _, col := range testColumns() {
		if err := v.StageColumn(col.Key, false); err != nil {
			t.Fatalf("StageColumn: %v", err)
		}
	}
	v.ApplyColumns()

	if _, _, err := v.ExportSet(); err != ErrNoVisibleColumns {
		t.Fatalf("expected ErrNoVisibleColumns, got %v", err)
	}
}

func TestLoadKeepsSelection(t *testing.T) {
	v := loadedView(t)
	v.ToggleRow("2")

	// A reload with row 2 gone leaves the id selected but invisible
	v.Load([]Row{
		testRow{id: "1", name: "Summer Launch", status: "active", budget: 5000},
	})
	if ids := v.SelectedIDs(); len(ids) != 0 {
		t.Fatalf("expected stale selection to stop intersecting, got %v", ids)
	}

	// And a reload that brings it back restores it
	v.Load([]Row{
		testRow{id: "2", name: "Winter Promo", status: "done", budget: 12000},
	})
	if ids := v.SelectedIDs(); len(ids) != 1 || ids[0] != "2" {
		t.Fatalf("expected row 2 selected again, got %v", ids)
	}
}

func TestNumericStringsSortLexically(t *testing.T) {
	v := New([]Column{{Key: "id", Label: "ID"}}, nil)
	v.Load([]Row{
		testRow{id: "9"},
		testRow{id: "10"},
	})
	v.SortBy("id")

	got := rowIDs(v.Rows())
	if got[0] != "10" {
		t.Fatalf("expected lexical string order, got %v", got)
	}
}
