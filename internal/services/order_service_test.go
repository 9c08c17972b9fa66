package services_test

import (
	"testing"

	"renewrubber/internal/models"
	"renewrubber/internal/repositories"
	"renewrubber/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func TestOrderService_GetAllOrders(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	orderService := services.NewOrderService(mockRepo)

	expected := []models.Order{
		{ID: "ORD-2025-004", Status: models.StatusInProgress, Total: 4500},
		{ID: "ORD-2024-001", Status: models.StatusCompleted, Total: 6500},
	}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	orders, err := orderService.GetAllOrders()
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	orderService := services.NewOrderService(mockRepo)

	order := &models.Order{ID: "ORD-2025-004", Status: models.StatusReceived}
	mockRepo.On("GetByID", "ORD-2025-004").Return(order, nil).Once()

	found, err := orderService.GetOrderByID("ORD-2025-004")
	assert.NoError(t, err)
	assert.Equal(t, "ORD-2025-004", found.ID)

	notFound := &repositories.NotFoundError{Resource: "order", ID: "ORD-0000"}
	mockRepo.On("GetByID", "ORD-0000").Return(nil, notFound).Once()

	_, err = orderService.GetOrderByID("ORD-0000")
	assert.True(t, repositories.IsNotFound(err))
	mockRepo.AssertExpectations(t)
}

func TestOrderService_Progress(t *testing.T) {
	orderService := services.NewOrderService(new(MockOrderRepository))

	withTimeline := &models.Order{
		Status: models.StatusInProgress,
		TrackingTimeline: []models.TrackingStep{
			{Label: "Order Received", Completed: true},
			{Label: "Shoes Inspected", Completed: true},
			{Label: "Resoling", Completed: false},
			{Label: "Ready for Pickup", Completed: false},
		},
	}
	completed, total := orderService.Progress(withTimeline)
	assert.Equal(t, 2, completed)
	assert.Equal(t, 4, total)

	// Without a timeline the status ordinal drives the progress bar.
	bare := &models.Order{Status: models.StatusReadyForPickup}
	completed, total = orderService.Progress(bare)
	assert.Equal(t, 3, completed)
	assert.Equal(t, 4, total)
}

func TestFixtureOrderRepository(t *testing.T) {
	repo := repositories.NewFixtureOrderRepository([]models.Order{
		{ID: "ORD-2024-001", Status: models.StatusCompleted},
	}, 0)

	orders, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, orders, 1)

	order, err := repo.GetByID("ORD-2024-001")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, order.Status)

	_, err = repo.GetByID("ORD-missing")
	assert.True(t, repositories.IsNotFound(err))
}
