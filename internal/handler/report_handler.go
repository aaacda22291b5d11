package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"invensight/internal/export"
	"invensight/internal/report"
	"invensight/internal/service"
)

// ReportHandler handles the analytics endpoints. Payload field names are a
// contract with the dashboard and are emitted exactly as its widgets expect
// them, without an envelope.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Stats handles GET /api/v1/products/stats
func (h *ReportHandler) Stats(c *gin.Context) {
	stats, err := h.reportService.Overview(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// SalesAndOrders handles GET /api/v1/products/sales-and-orders
func (h *ReportHandler) SalesAndOrders(c *gin.Context) {
	series, err := h.reportService.SalesAndOrders(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// SuppliersAndCategories handles GET /api/v1/products/suppliers-and-categories
func (h *ReportHandler) SuppliersAndCategories(c *gin.Context) {
	preview, err := h.reportService.SuppliersAndCategories(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// Suppliers handles GET /api/v1/products/suppliers
func (h *ReportHandler) Suppliers(c *gin.Context) {
	p := report.ParseParams(c.Query("page"), c.Query("limit"))

	page, err := h.reportService.Suppliers(c.Request.Context(), p)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Categories handles GET /api/v1/products/categories
func (h *ReportHandler) Categories(c *gin.Context) {
	p := report.ParseParams(c.Query("page"), c.Query("limit"))

	page, err := h.reportService.Categories(c.Request.Context(), p)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Export handles GET /api/v1/products/reports/export and streams the rollup
// workbook as an xlsx download.
func (h *ReportHandler) Export(c *gin.Context) {
	suppliers, categories, err := h.reportService.SortedRollups(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	f, err := export.Workbook(suppliers, categories)
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename("inventory_report")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
