package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasir/internal/application/service"
	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/internal/presentation/http/dto/request"
	"github.com/sangkips/kasir/internal/presentation/http/dto/response"
	"github.com/sangkips/kasir/internal/presentation/http/middleware"
	"github.com/sangkips/kasir/pkg/money"
)

// CartHandler handles the session cart
type CartHandler struct {
	carts          *service.CartRegistry
	catalogService *service.CatalogService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *service.CartRegistry, catalogService *service.CatalogService) *CartHandler {
	return &CartHandler{carts: carts, catalogService: catalogService}
}

// CartView is the cart as the screen shows it
type CartView struct {
	Items          []entity.CartItem `json:"items"`
	Count          int               `json:"count"`
	Total          int64             `json:"total"`
	TotalFormatted string            `json:"total_formatted"`
}

func cartView(cart *service.CartStore) CartView {
	total := cart.Total()
	return CartView{
		Items:          cart.Items(),
		Count:          cart.Count(),
		Total:          total,
		TotalFormatted: money.FormatAmount(total),
	}
}

func (h *CartHandler) cart(c *gin.Context) *service.CartStore {
	return h.carts.ForSession(middleware.SessionID(c))
}

// Get returns the session cart
func (h *CartHandler) Get(c *gin.Context) {
	response.OK(c, "Cart retrieved", cartView(h.cart(c)))
}

// AddItem adds a product at its current server price
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cart := h.cart(c)
	if err := h.catalogService.AddToCart(c.Request.Context(), cart, req.ProductID, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added", cartView(cart))
}

// UpdateItem replaces a line's quantity
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cart := h.cart(c)
	cart.UpdateQuantity(c.Param("product_id"), *req.Quantity)
	response.OK(c, "Cart updated", cartView(cart))
}

// RemoveItem removes a line
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart := h.cart(c)
	cart.RemoveItem(c.Param("product_id"))
	response.OK(c, "Item removed", cartView(cart))
}

// Clear cancels the sale in progress
func (h *CartHandler) Clear(c *gin.Context) {
	cart := h.cart(c)
	cart.Clear()
	response.OK(c, "Cart cleared", cartView(cart))
}
