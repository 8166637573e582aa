// Package listview implements the tabular data pattern shared by every
// listing page: the full collection is loaded into memory, then
// filtering, sorting, row selection and export slicing all happen
// client-side. There is deliberately no pagination — select-all and
// export are defined against the filtered set, and paging would change
// those semantics.
package listview

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrEmptySelection is returned when an export is requested with
	// no rows selected. No file is produced.
	ErrEmptySelection = errors.New("no rows selected")

	// ErrNoVisibleColumns is returned when every column is hidden
	ErrNoVisibleColumns = errors.New("no visible columns")

	// ErrUnknownColumn is returned for a column key outside the
	// view's declared column set.
	ErrUnknownColumn = errors.New("unknown column")
)

// Row is one record in a list view
type Row interface {
	RowID() string
	Field(key string) any
}

// Column is a declared table column: the record field key and the
// display label used for headers and export files.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// FilterKind decides how a filter value matches a field
type FilterKind int

const (
	// Text matches by case-insensitive substring containment
	Text FilterKind = iota
	// Enum matches by exact equality
	Enum
)

// Direction is a sort direction
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Sort is the active sort state
type Sort struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// View holds the table state for one resource: items, filters, sort,
// selection and column visibility.
type View struct {
	mu      sync.Mutex
	columns []Column
	kinds   map[string]FilterKind

	items    []Row
	filters  map[string]string
	selected map[string]struct{}
	sort     *Sort

	visible map[string]bool
	draft   map[string]bool
}

// New creates a view with the declared columns, all visible. kinds
// names the filterable fields; fields absent from it are not
// filterable.
func New(columns []Column, kinds map[string]FilterKind) *View {
	visible := make(map[string]bool, len(columns))
	draft := make(map[string]bool, len(columns))
	for _, col := range columns {
		visible[col.Key] = true
		draft[col.Key] = true
	}
	if kinds == nil {
		kinds = map[string]FilterKind{}
	}
	return &View{
		columns:  columns,
		kinds:    kinds,
		filters:  make(map[string]string),
		selected: make(map[string]struct{}),
		visible:  visible,
		draft:    draft,
	}
}

// Load replaces the collection wholesale. Selection is kept; stale ids
// simply stop intersecting the collection.
func (v *View) Load(items []Row) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = items
}

// SetFilter sets one filter value. An empty value clears the filter.
func (v *View) SetFilter(field, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.kinds[field]; !ok {
		return fmt.Errorf("%w: not filterable: %s", ErrUnknownColumn, field)
	}
	if value == "" {
		delete(v.filters, field)
	} else {
		v.filters[field] = value
	}
	return nil
}

// ClearFilters removes every active filter
func (v *View) ClearFilters() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filters = make(map[string]string)
}

// Filters returns a copy of the active filters
func (v *View) Filters() map[string]string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make(map[string]string, len(v.filters))
	for k, val := range v.filters {
		out[k] = val
	}
	return out
}

// SortBy toggles the sort state: a repeated field flips the direction,
// a new field starts ascending.
func (v *View) SortBy(field string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.sort != nil && v.sort.Field == field && v.sort.Direction == Ascending {
		v.sort = &Sort{Field: field, Direction: Descending}
		return
	}
	v.sort = &Sort{Field: field, Direction: Ascending}
}

// SortState returns the active sort, or nil
func (v *View) SortState() *Sort {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.sort == nil {
		return nil
	}
	s := *v.sort
	return &s
}

// Rows returns the filtered, sorted rows
func (v *View) Rows() []Row {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filteredSorted()
}

// ToggleRow flips one row in and out of the selection
func (v *View) ToggleRow(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.selected[id]; ok {
		delete(v.selected, id)
	} else {
		v.selected[id] = struct{}{}
	}
}

// ToggleSelectAll selects exactly the rows visible under the active
// filters; when they are all selected already, it clears the
// selection instead.
func (v *View) ToggleSelectAll() {
	v.mu.Lock()
	defer v.mu.Unlock()
	filtered := v.filteredSorted()

	allSelected := len(filtered) > 0
	for _, row := range filtered {
		if _, ok := v.selected[row.RowID()]; !ok {
			allSelected = false
			break
		}
	}

	v.selected = make(map[string]struct{})
	if !allSelected {
		for _, row := range filtered {
			v.selected[row.RowID()] = struct{}{}
		}
	}
}

// ClearSelection empties the selection
func (v *View) ClearSelection() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = make(map[string]struct{})
}

// SelectedIDs returns the ids of selected rows still visible under the
// active filters, in table order.
func (v *View) SelectedIDs() []string {
	rows := v.SelectedRows()
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.RowID()
	}
	return ids
}

// SelectedRows returns selected ∩ filtered, in table order
func (v *View) SelectedRows() []Row {
	v.mu.Lock()
	defer v.mu.Unlock()
	var out []Row
	for _, row := range v.filteredSorted() {
		if _, ok := v.selected[row.RowID()]; ok {
			out = append(out, row)
		}
	}
	return out
}

// Columns returns the declared columns in table order
func (v *View) Columns() []Column {
	return v.columns
}

// VisibleColumns returns the applied (not draft) visible columns in
// declared order.
func (v *View) VisibleColumns() []Column {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visibleColumns()
}

// StageColumn records a visibility change in the draft. The rendered
// columns stay unchanged until ApplyColumns.
func (v *View) StageColumn(key string, visible bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.draft[key]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, key)
	}
	v.draft[key] = visible
	return nil
}

// ApplyColumns commits the staged visibility changes
func (v *View) ApplyColumns() {
	v.mu.Lock()
	defer v.mu.Unlock()
	for key, visible := range v.draft {
		v.visible[key] = visible
	}
}

// DiscardColumns resets the draft back to the applied state
func (v *View) DiscardColumns() {
	v.mu.Lock()
	defer v.mu.Unlock()
	for key, visible := range v.visible {
		v.draft[key] = visible
	}
}

// ExportSet returns the header labels (applied visible columns, in
// declared order) and the cell values of the selected, filtered rows.
// An empty selection or an all-hidden column set is rejected.
func (v *View) ExportSet() ([]string, [][]any, error) {
	rows := v.SelectedRows()
	if len(rows) == 0 {
		return nil, nil, ErrEmptySelection
	}

	v.mu.Lock()
	columns := v.visibleColumns()
	v.mu.Unlock()
	if len(columns) == 0 {
		return nil, nil, ErrNoVisibleColumns
	}

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Label
	}

	cells := make([][]any, len(rows))
	for i, row := range rows {
		cells[i] = make([]any, len(columns))
		for j, col := range columns {
			cells[i][j] = row.Field(col.Key)
		}
	}
	return headers, cells, nil
}

// visibleColumns returns applied visible columns; callers hold the lock
func (v *View) visibleColumns() []Column {
	var out []Column
	for _, col := range v.columns {
		if v.visible[col.Key] {
			out = append(out, col)
		}
	}
	return out
}

// filteredSorted applies filters then sort; callers hold the lock
func (v *View) filteredSorted() []Row {
	var out []Row
	for _, row := range v.items {
		if v.matchesAll(row) {
			out = append(out, row)
		}
	}

	if v.sort != nil {
		field := v.sort.Field
		desc := v.sort.Direction == Descending
		sort.SliceStable(out, func(i, j int) bool {
			cmp := compare(out[i].Field(field), out[j].Field(field))
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}
	return out
}

// matchesAll reports whether a row passes every active filter
func (v *View) matchesAll(row Row) bool {
	for field, value := range v.filters {
		if !matches(row.Field(field), value, v.kinds[field]) {
			return false
		}
	}
	return true
}

// matches applies one filter predicate. Empty filter values always
// pass, but SetFilter never stores them.
func matches(fieldValue any, filterValue string, kind FilterKind) bool {
	if filterValue == "" {
		return true
	}
	text := fmt.Sprint(fieldValue)
	if kind == Enum {
		return text == filterValue
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(filterValue))
}

// compare orders two raw field values: numerically when both are
// numeric Go values, by plain string comparison otherwise. Numeric-
// looking strings sort lexically on purpose.
func compare(a, b any) int {
	fa, aNum := asNumber(a)
	fb, bNum := asNumber(b)
	if aNum && bNum {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
