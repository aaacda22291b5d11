package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invensight/internal/report"
	"invensight/internal/service"
)

// ProductHandler handles product record endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	p := report.ParseParams(c.Query("page"), c.Query("limit"))

	page, err := h.productService.List(c.Request.Context(), p)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Delete handles DELETE /api/v1/products/:id. The path parameter may be the
// legacy numeric id or the native key.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted product."})
}
