package handlers

import (
	"errors"
	"log"

	"renewrubber/internal/models"
	"renewrubber/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles checkout submission.
type CheckoutHandler struct {
	service *services.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
	}
}

// RegisterRoutes registers the checkout route with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout", h.HandleSubmit)
}

// HandleSubmit runs the checkout pipeline. An empty cart short-circuits to
// the empty-cart response before any validation; validation failures return
// the field -> message map for inline display.
func (h *CheckoutHandler) HandleSubmit(c *fiber.Ctx) error {
	var form models.CheckoutForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	confirmation, err := h.service.Submit(form)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrCartEmpty):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message":  "Your cart is empty",
				"redirect": "/shop",
			})
		case errors.Is(err, services.ErrAlreadySubmitting):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "A submission is already being processed",
			})
		case errors.As(err, &validationErr):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  validationErr.Fields,
			})
		default:
			log.Printf("Error submitting checkout: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not complete checkout",
				"error":   err.Error(),
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Order placed successfully",
		"confirmation": confirmation,
		"redirect":     "/order-success/" + confirmation.OrderID,
	})
}
