package product

// StockLevel is the coarse availability bucket shown to customers.
type StockLevel string

const (
	StockAvailable  StockLevel = "available"
	StockLow        StockLevel = "low"
	StockOutOfStock StockLevel = "out_of_stock"
)

// Product is the catalog shape returned to customers. JSON tags follow the
// camelCase convention used across the API.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Available   bool       `json:"available"`
	StockLevel  StockLevel `json:"stockLevel"`
	Category    string     `json:"category"`
	LastUpdated string     `json:"lastUpdated"`
}
