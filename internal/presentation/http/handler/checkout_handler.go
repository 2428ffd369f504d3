package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasir/internal/application/service"
	"github.com/sangkips/kasir/internal/presentation/http/dto/request"
	"github.com/sangkips/kasir/internal/presentation/http/dto/response"
	"github.com/sangkips/kasir/internal/presentation/http/middleware"
	"github.com/sangkips/kasir/pkg/apperror"
	"github.com/sangkips/kasir/pkg/money"
)

// CheckoutHandler settles the session cart
type CheckoutHandler struct {
	carts           *service.CartRegistry
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(carts *service.CartRegistry, checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{carts: carts, checkoutService: checkoutService}
}

func checkoutInput(req *request.CheckoutRequest) (service.CheckoutInput, error) {
	received := req.Received
	if req.ReceivedText != "" {
		amount, err := money.AmountFromDigits(money.Digits(req.ReceivedText))
		if err != nil || amount > money.MaxAmount {
			return service.CheckoutInput{}, apperror.NewValidationError([]apperror.FieldError{{Field: "received_text", Message: "not an amount"}})
		}
		received = float64(amount)
	}
	return service.CheckoutInput{
		CustomerName: req.CustomerName,
		Received:     received,
		IsCredit:     req.IsCredit,
		Discount:     req.Discount,
		Tax:          req.Tax,
	}, nil
}

// Preview computes the payment without submitting
func (h *CheckoutHandler) Preview(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	input, err := checkoutInput(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	preview, err := h.checkoutService.Preview(h.carts.ForSession(middleware.SessionID(c)), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Checkout preview", preview)
}

// Checkout submits the sale and returns the receipt
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	user := requireUser(c)
	if user == nil {
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	input, err := checkoutInput(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	cart := h.carts.ForSession(middleware.SessionID(c))
	result, err := h.checkoutService.Checkout(c.Request.Context(), user, cart, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Transaction completed", result)
}
