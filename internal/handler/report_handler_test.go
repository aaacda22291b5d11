package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"invensight/internal/handler"
	"invensight/internal/report"
	"invensight/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newReportHandler() (*handler.ReportHandler, *mocks.MockReportService) {
	mockSvc := new(mocks.MockReportService)
	h := handler.NewReportHandler(mockSvc)
	return h, mockSvc
}

func TestReportHandler_Stats(t *testing.T) {
	h, mockSvc := newReportHandler()

	mockSvc.On("Overview", mock.Anything).Return(&report.OverallStats{
		TotalProduct:    7,
		TotalCategories: 3,
		TotalOrders:     7,
		TotalSales:      1234,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/products/stats", http.NoBody)

	h.Stats(c)

	assert.Equal(t, http.StatusOK, w.Code)

	// Field names are a dashboard contract; assert them literally.
	var body map[string]json.Number
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err)
	assert.Contains(t, body, "total_product")
	assert.Contains(t, body, "total_categories")
	assert.Contains(t, body, "total_orders")
	assert.Contains(t, body, "total_sales")
	assert.Equal(t, "7", body["total_product"].String())
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_Stats_InternalError(t *testing.T) {
	h, mockSvc := newReportHandler()

	mockSvc.On("Overview", mock.Anything).Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/products/stats", http.NoBody)

	h.Stats(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp handler.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
}

func TestReportHandler_SalesAndOrders(t *testing.T) {
	h, mockSvc := newReportHandler()

	mockSvc.On("SalesAndOrders", mock.Anything).Return(report.MonthlySeries{
		"Jan": {TotalOrders: 2, TotalQuantity: 5, TotalSales: 150},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/products/sales-and-orders", http.NoBody)

	h.SalesAndOrders(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]map[string]json.Number
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err)
	assert.Contains(t, body, "Jan")
	assert.Contains(t, body["Jan"], "totalOrders")
	assert.Contains(t, body["Jan"], "totalQuantity")
	assert.Contains(t, body["Jan"], "totalSales")
}

func TestReportHandler_SuppliersAndCategories(t *testing.T) {
	h, mockSvc := newReportHandler()

	mockSvc.On("SuppliersAndCategories", mock.Anything).Return(&report.Preview{
		SupplierData: []report.SupplierRollup{{Name: "Acme", Quantity: 5, Unit: 10, Price: 50}},
		CategoryData: []report.CategoryRollup{{Name: "Fasteners", Quantity: 5, Price: 50}},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/products/suppliers-and-categories", http.NoBody)

	h.SuppliersAndCategories(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err)
	assert.Contains(t, body, "Supplier data")
	assert.Contains(t, body, "Category data")

	var suppliers []map[string]json.Number
	assert.NoError(t, json.Unmarshal(body["Supplier data"], &suppliers))
	assert.Len(t, suppliers, 1)
	assert.Contains(t, suppliers[0], "Quantity")
	assert.Contains(t, suppliers[0], "Unit")
	assert.Contains(t, suppliers[0], "Price")

	var categories []map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(body["Category data"], &categories))
	assert.Contains(t, categories[0], "Category name")
}

func TestReportHandler_Suppliers_ParsesParams(t *testing.T) {
	h, mockSvc := newReportHandler()

	page := report.PageOf([]report.SupplierRollup{{Name: "Acme"}}, report.Params{Page: 2, Limit: 5})
	mockSvc.On("Suppliers", mock.Anything, report.Params{Page: 2, Limit: 5}).Return(&page, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/products/suppliers?page=2&limit=5", http.NoBody)

	h.Suppliers(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err)
	for _, key := range []string{"items", "page", "limit", "total", "totalPages", "hasNext", "hasPrev"} {
		assert.Contains(t, body, key)
	}
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_Suppliers_BadParamsCoerced(t *testing.T) {
	h, mockSvc := newReportHandler()

	page := report.PageOf([]report.SupplierRollup{}, report.Params{Page: 1, Limit: 10})
	mockSvc.On("Suppliers", mock.Anything, report.Params{Page: 1, Limit: 10}).Return(&page, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/products/suppliers?page=bogus&limit=-3", http.NoBody)

	h.Suppliers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_Categories(t *testing.T) {
	h, mockSvc := newReportHandler()

	page := report.PageOf([]report.CategoryRollup{{Name: "a"}}, report.Params{Page: 1, Limit: 10})
	mockSvc.On("Categories", mock.Anything, report.Params{Page: 1, Limit: 10}).Return(&page, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/products/categories", http.NoBody)

	h.Categories(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReportHandler_Export(t *testing.T) {
	h, mockSvc := newReportHandler()

	mockSvc.On("SortedRollups", mock.Anything).Return(
		[]report.SupplierRollup{{Name: "Acme", Quantity: 5, Unit: 10, Price: 50}},
		[]report.CategoryRollup{{Name: "Fasteners", Quantity: 5, Price: 50}},
		nil,
	)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/products/reports/export", http.NoBody)

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, w.Body.Len())
}
