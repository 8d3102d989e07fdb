package order

import "github.com/hothcommerce/storefront/internal/product"

// Status is the order lifecycle as documented for the storefront API. Only
// StatusSubmitted is produced today; the rest belong to the management
// system once order processing is wired up.
type Status string

const (
	StatusSubmitted  Status = "submitted"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Order is the shape returned after submission.
type Order struct {
	ID                string  `json:"id"`
	Status            Status  `json:"status"`
	Total             float64 `json:"total"`
	EstimatedDelivery string  `json:"estimatedDelivery"`
	CreatedAt         string  `json:"createdAt"`
}

// CartItem documents the line-item shape submissions may carry. Nothing is
// priced or checked against stock server-side.
type CartItem struct {
	ProductID  string          `json:"productId"`
	Product    product.Product `json:"product"`
	Quantity   int             `json:"quantity"`
	UnitPrice  float64         `json:"unitPrice"`
	TotalPrice float64         `json:"totalPrice"`
}

// Address is the shipping-address shape carried on submissions.
type Address struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}
