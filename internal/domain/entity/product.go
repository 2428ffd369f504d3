package entity

// Product is a catalog item. Price is in whole rupiah.
type Product struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Unit       string  `json:"unit"`
	Price      int64   `json:"price"`
	Category   string  `json:"category,omitempty"`
	CategoryID string  `json:"category_id,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
	Stock      *int    `json:"stock,omitempty"`
}

// Category groups products in the catalog
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductFilter narrows a catalog listing
type ProductFilter struct {
	CategoryID string
	Search     string
	Page       int
	Limit      int
}
