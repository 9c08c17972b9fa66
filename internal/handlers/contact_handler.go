package handlers

import (
	"errors"
	"fmt"
	"log"

	"renewrubber/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles contact form submissions. There is no backend to
// route them to, so valid submissions are acknowledged and logged.
type ContactHandler struct {
	validate *validator.Validate
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler() *ContactHandler {
	return &ContactHandler{
		validate: validator.New(),
	}
}

// RegisterRoutes registers the contact route with the Fiber app.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleSubmit)
}

// HandleSubmit validates and accepts a contact form.
func (h *ContactHandler) HandleSubmit(c *fiber.Ctx) error {
	var form models.ContactForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(form); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorMessages := make(map[string]string)
			for _, e := range validationErrors {
				errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  errorMessages,
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	log.Printf("Contact message from %s <%s>: %s", form.Name, form.Email, form.Subject)
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Thanks for reaching out, we will get back to you soon",
	})
}
