package request

// AddCartItemRequest adds a product to the session cart
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gte=1,lte=100000"`
}

// UpdateCartItemRequest replaces a line's quantity; zero removes it
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,lte=100000"`
}

// CheckoutRequest settles the session cart. Received accepts either a number
// or the digits typed on the keypad, e.g. "150.000". Amounts are bounded by
// money.MaxAmount.
type CheckoutRequest struct {
	CustomerName string  `json:"customer_name"`
	Received     float64 `json:"received" binding:"lte=1000000000000000"`
	ReceivedText string  `json:"received_text"`
	IsCredit     bool    `json:"is_credit"`
	Discount     int64   `json:"discount" binding:"gte=0,lte=1000000000000000"`
	Tax          *int64  `json:"tax" binding:"omitempty,gte=0,lte=1000000000000000"`
}

// ListRequest carries the common list query parameters
type ListRequest struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Status   string `form:"status"`
	Type     string `form:"type"`
	Category string `form:"category"`
	Search   string `form:"search"`
	Branch   string `form:"branch"`
}

// ProductListRequest filters the catalog
type ProductListRequest struct {
	CategoryID string `form:"category_id"`
	Search     string `form:"search"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}
