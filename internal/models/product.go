package models

// Timestamp layouts used across the store
const (
	TimestampLayout    = "2006-01-02 15:04:05"
	DateLayout         = "2006-01-02"
	CreatedAtLayout    = "2006-01-02T15:04:05.000000"
	DeliveryHourLayout = "2006-01-02 15:04"
)

// DefaultProductImage is used when a product is created without an image
const DefaultProductImage = "/static/images/default-product.png"

// DefaultProductCategory is used when a product is created without a category
const DefaultProductCategory = "general"

// Product represents a product listed in the marketplace
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Seller      string  `json:"seller"`
	SellerID    string  `json:"sellerId"`
	Category    string  `json:"category"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// ProductCreation represents the payload for creating a product.
// Price and quantity are pointers so a missing field is reported as a
// validation failure instead of silently defaulting to zero.
type ProductCreation struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       *FlexFloat `json:"price"`
	Image       string     `json:"image"`
	Seller      string     `json:"seller"`
	SellerID    string     `json:"sellerId"`
	Quantity    *FlexInt   `json:"quantity"`
	Category    string     `json:"category"`
}

// ProductUpdate represents a partial product update; nil fields keep
// their current values
type ProductUpdate struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Price       *FlexFloat `json:"price"`
	Quantity    *FlexInt   `json:"quantity"`
	Image       *string    `json:"image"`
}
