package repositories

import (
	"renewrubber/internal/models"
)

// OrderRepository defines the interface for order history access. Orders are
// immutable fixture data here; there is deliberately no write path. A real
// backend owning the order lifecycle would extend this interface.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
}
