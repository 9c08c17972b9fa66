package services

import (
	"renewrubber/internal/models"
	"renewrubber/internal/repositories"
)

// OrderService handles business logic related to the order history.
// Orders are read-only fixture data; there is no write path.
type OrderService struct {
	repo repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repositories.OrderRepository) *OrderService {
	return &OrderService{
		repo: repo,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.repo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.repo.GetByID(id)
}

// Progress returns how far along the workflow an order is, as completed
// steps out of total timeline steps. Orders without a timeline fall back to
// the status ordinal.
func (s *OrderService) Progress(order *models.Order) (completed, total int) {
	if len(order.TrackingTimeline) == 0 {
		// Four workflow stages: Received through Completed.
		return order.Status.Ordinal() + 1, 4
	}
	for _, step := range order.TrackingTimeline {
		if step.Completed {
			completed++
		}
	}
	return completed, len(order.TrackingTimeline)
}
