package product

import (
	"sync"
	"time"
)

// Repository serves the customer catalog. There is no backing store yet;
// implementations synthesize records, so Get never fails and unknown ids
// are echoed back rather than rejected.
type Repository interface {
	List() []Product
	Get(id string) Product
}

// InMemoryRepository holds catalog templates and stamps lastUpdated at read
// time. It is the only repository until the catalog is wired to the
// management system.
type InMemoryRepository struct {
	mu        sync.RWMutex
	templates []Product
}

// SampleCatalog is the fixed record the storefront ships with.
func SampleCatalog() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Sample Product",
			Description: "A great product for customers",
			Price:       29.99,
			Available:   true,
			StockLevel:  StockAvailable,
			Category:    "Electronics",
		},
	}
}

func NewInMemoryRepository(templates []Product) *InMemoryRepository {
	r := &InMemoryRepository{templates: make([]Product, len(templates))}
	copy(r.templates, templates)
	return r
}

func (r *InMemoryRepository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now().UTC().Format(time.RFC3339)
	out := make([]Product, len(r.templates))
	for i, p := range r.templates {
		p.LastUpdated = now
		out[i] = p
	}
	return out
}

// Get returns the first template with its id replaced verbatim. No lookup
// happens, so nonexistent ids still resolve.
func (r *InMemoryRepository) Get(id string) Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p := r.templates[0]
	p.ID = id
	p.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	return p
}
