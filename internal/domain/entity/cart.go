package entity

// CartItem is a product and quantity snapshot held in a checkout cart.
// Price is captured when the product is first added.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    int64   `json:"price"`
}

// Subtotal is price times quantity
func (i CartItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// TransactionItem converts the cart line into a payload line
func (i CartItem) TransactionItem() TransactionItem {
	return TransactionItem{
		ProductID:   i.Product.ID,
		ProductName: i.Product.Name,
		Quantity:    i.Quantity,
		Price:       i.Price,
		Subtotal:    i.Subtotal(),
		Unit:        i.Product.Unit,
	}
}
