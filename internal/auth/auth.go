package auth

// PlaceholderToken stands in for a real credential until customer accounts
// are wired to the management system.
const PlaceholderToken = "placeholder-customer-token"

// Customer is the shape returned inside auth envelopes.
type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session pairs a customer with a token and its expiry.
type Session struct {
	Customer  Customer `json:"customer"`
	Token     string   `json:"token"`
	ExpiresAt string   `json:"expiresAt"`
}
