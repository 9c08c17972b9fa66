package repositories

import (
	"sync"
	"time"

	"renewrubber/internal/models"
)

// Simulated backend latencies, matching the original mock client.
const (
	CatalogListDelay = 300 * time.Millisecond
	CatalogGetDelay  = 200 * time.Millisecond
)

// FixtureCatalogRepository serves the embedded product catalog after a fixed
// artificial delay, emulating a network round-trip to a commerce backend.
type FixtureCatalogRepository struct {
	products []models.Product
	byID     map[string]models.Product
	mu       sync.RWMutex

	listDelay time.Duration
	getDelay  time.Duration
}

// NewFixtureCatalogRepository creates a catalog repository over the given
// product list. listDelay and getDelay are the simulated latencies; pass 0
// in tests.
func NewFixtureCatalogRepository(products []models.Product, listDelay, getDelay time.Duration) *FixtureCatalogRepository {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &FixtureCatalogRepository{
		products:  products,
		byID:      byID,
		listDelay: listDelay,
		getDelay:  getDelay,
	}
}

// GetAll returns the full catalog.
func (r *FixtureCatalogRepository) GetAll() ([]models.Product, error) {
	time.Sleep(r.listDelay)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID returns a product by its ID.
func (r *FixtureCatalogRepository) GetByID(id string) (*models.Product, error) {
	time.Sleep(r.getDelay)

	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "product", ID: id}
	}
	return &product, nil
}
