package repositories

import (
	"renewrubber/internal/models"
)

// CatalogRepository defines the interface for product catalog access.
// The catalog is read-only; a real commerce backend can be substituted
// behind this interface without touching services or handlers.
type CatalogRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
}
