package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/creatorsmela/admin-console/internal/export"
	"github.com/creatorsmela/admin-console/internal/listview"
	"github.com/creatorsmela/admin-console/internal/middleware"

	"github.com/gin-gonic/gin"
)

// ListController is the HTTP surface of the list-management pattern,
// shared by every listing page. Each page owns one controller wrapping
// its view and collection loader; resource-specific mutations live in
// the page's own handler.
type ListController struct {
	resource string
	sheet    string
	view     *listview.View
	load     func(ctx context.Context, token string) ([]listview.Row, error)
	resp     *responder
}

// NewListController creates the controller for one listing page
func NewListController(resource, sheet string, view *listview.View, load func(ctx context.Context, token string) ([]listview.Row, error), resp *responder) *ListController {
	return &ListController{
		resource: resource,
		sheet:    sheet,
		view:     view,
		load:     load,
		resp:     resp,
	}
}

// Register mounts the pattern's routes on a page group
func (lc *ListController) Register(group *gin.RouterGroup) {
	group.GET("", lc.List)
	group.PUT("/filters", lc.SetFilters)
	group.DELETE("/filters", lc.ClearFilters)
	group.POST("/sort", lc.Sort)
	group.POST("/selection/toggle", lc.ToggleSelection)
	group.POST("/selection/all", lc.SelectAll)
	group.DELETE("/selection", lc.ClearSelection)
	group.PUT("/columns", lc.StageColumns)
	group.POST("/columns/apply", lc.ApplyColumns)
	group.POST("/columns/discard", lc.DiscardColumns)
	group.POST("/export", lc.Export)
}

// Reload refreshes the collection from the API; mutations call it so
// the table reflects the write.
func (lc *ListController) Reload(ctx context.Context, token string) error {
	rows, err := lc.load(ctx, token)
	if err != nil {
		return err
	}
	lc.view.Load(rows)
	return nil
}

// List fetches the full collection and returns the rendered table
// state: filtered+sorted rows, applied columns, filters, sort and
// selection. There is no pagination; the whole set is always loaded.
func (lc *ListController) List(c *gin.Context) {
	token := middleware.ContextToken(c)
	if err := lc.Reload(c.Request.Context(), token); err != nil {
		lc.resp.renderError(c, err, "Error fetching "+lc.resource)
		return
	}
	lc.state(c)
}

// SetFilters replaces the active filter set
func (lc *ListController) SetFilters(c *gin.Context) {
	var filters map[string]string
	if err := c.ShouldBindJSON(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter payload", "details": err.Error()})
		return
	}

	lc.view.ClearFilters()
	for field, value := range filters {
		if err := lc.view.SetFilter(field, value); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	lc.state(c)
}

// ClearFilters removes every active filter
func (lc *ListController) ClearFilters(c *gin.Context) {
	lc.view.ClearFilters()
	lc.state(c)
}

// Sort toggles the sort on a column: ascending first, descending on a
// repeat, ascending again on a new column.
func (lc *ListController) Sort(c *gin.Context) {
	var req struct {
		Field string `json:"field" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort payload", "details": err.Error()})
		return
	}
	lc.view.SortBy(req.Field)
	lc.state(c)
}

// ToggleSelection flips one row's selection
func (lc *ListController) ToggleSelection(c *gin.Context) {
	var req struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid selection payload", "details": err.Error()})
		return
	}
	lc.view.ToggleRow(req.ID)
	lc.state(c)
}

// SelectAll selects exactly the rows visible under the active filters,
// or clears the selection when they are all selected already.
func (lc *ListController) SelectAll(c *gin.Context) {
	lc.view.ToggleSelectAll()
	lc.state(c)
}

// ClearSelection empties the selection
func (lc *ListController) ClearSelection(c *gin.Context) {
	lc.view.ClearSelection()
	lc.state(c)
}

// StageColumns records visibility changes without applying them
func (lc *ListController) StageColumns(c *gin.Context) {
	var changes map[string]bool
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column payload", "details": err.Error()})
		return
	}
	for key, visible := range changes {
		if err := lc.view.StageColumn(key, visible); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"staged": changes})
}

// ApplyColumns commits the staged visibility changes
func (lc *ListController) ApplyColumns(c *gin.Context) {
	lc.view.ApplyColumns()
	lc.state(c)
}

// DiscardColumns abandons the staged visibility changes
func (lc *ListController) DiscardColumns(c *gin.Context) {
	lc.view.DiscardColumns()
	lc.state(c)
}

// Export streams a report of the selected rows in the requested
// format. The row set is selected ∩ filtered; the columns are the
// applied visible set with their display labels as headers. An empty
// selection produces no file.
func (lc *ListController) Export(c *gin.Context) {
	var req struct {
		Format string `json:"format" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid export payload", "details": err.Error()})
		return
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token := middleware.ContextToken(c)
	if err := lc.Reload(c.Request.Context(), token); err != nil {
		lc.resp.renderError(c, err, "Error fetching "+lc.resource)
		return
	}

	headers, rows, err := lc.view.ExportSet()
	if err != nil {
		if errors.Is(err, listview.ErrEmptySelection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No rows selected. Select at least one row to download."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	switch format {
	case export.FormatPDF:
		err = export.WritePDF(&buf, headers, rows)
	default:
		err = export.WriteExcel(&buf, lc.sheet, headers, rows)
	}
	if err != nil {
		lc.resp.renderError(c, err, "Error building report")
		return
	}

	filename := export.Filename(format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// state responds with the current table state
func (lc *ListController) state(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":        lc.view.Rows(),
		"columns":      lc.view.VisibleColumns(),
		"all_columns":  lc.view.Columns(),
		"filters":      lc.view.Filters(),
		"sort":         lc.view.SortState(),
		"selected_ids": lc.view.SelectedIDs(),
	})
}
