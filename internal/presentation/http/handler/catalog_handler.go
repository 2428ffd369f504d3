package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasir/internal/application/service"
	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/internal/presentation/http/dto/request"
	"github.com/sangkips/kasir/internal/presentation/http/dto/response"
)

// CatalogHandler handles product and category requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts handles listing products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var req request.ProductListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.catalogService.ListProducts(c.Request.Context(), entity.ProductFilter{
		CategoryID: req.CategoryID,
		Search:     req.Search,
		Page:       req.Page,
		Limit:      req.Limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Products retrieved", result)
}

// GetProduct handles getting a product by ID
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved", product)
}

// ListCategories handles listing categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Categories retrieved", categories)
}
