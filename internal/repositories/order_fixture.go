package repositories

import (
	"sync"
	"time"

	"renewrubber/internal/models"
)

// OrderListDelay is the simulated latency for order history reads.
const OrderListDelay = 400 * time.Millisecond

// FixtureOrderRepository serves the embedded mock order history after a
// fixed artificial delay.
type FixtureOrderRepository struct {
	orders []models.Order
	byID   map[string]models.Order
	mu     sync.RWMutex

	delay time.Duration
}

// NewFixtureOrderRepository creates an order repository over the given
// order list. delay is the simulated latency; pass 0 in tests.
func NewFixtureOrderRepository(orders []models.Order, delay time.Duration) *FixtureOrderRepository {
	byID := make(map[string]models.Order, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
	}
	return &FixtureOrderRepository{
		orders: orders,
		byID:   byID,
		delay:  delay,
	}
}

// GetAll returns all orders in fixture order.
func (r *FixtureOrderRepository) GetAll() ([]models.Order, error) {
	time.Sleep(r.delay)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

// GetByID returns an order by its ID.
func (r *FixtureOrderRepository) GetByID(id string) (*models.Order, error) {
	time.Sleep(r.delay)

	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "order", ID: id}
	}
	return &order, nil
}
