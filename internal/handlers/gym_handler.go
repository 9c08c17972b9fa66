package handlers

import (
	"renewrubber/internal/services"

	"github.com/gofiber/fiber/v2"
)

// GymHandler handles HTTP requests for the partner gym locator.
type GymHandler struct {
	service *services.GymService
}

// NewGymHandler creates a new GymHandler.
func NewGymHandler(service *services.GymService) *GymHandler {
	return &GymHandler{
		service: service,
	}
}

// RegisterRoutes registers the gym routes with the Fiber app.
func (h *GymHandler) RegisterRoutes(router fiber.Router) {
	gymRoutes := router.Group("/gyms")
	gymRoutes.Get("/", h.HandleGetGyms)
	gymRoutes.Get("/regions", h.HandleGetRegions)
	gymRoutes.Get("/map", h.HandleGetMapMarkers)
}

// HandleGetGyms returns the gym list, optionally filtered by a search query
// and/or a region.
func (h *GymHandler) HandleGetGyms(c *fiber.Ctx) error {
	query := c.Query("q")
	region := c.Query("region")
	if query == "" && region == "" {
		return c.JSON(h.service.GetAllGyms())
	}
	return c.JSON(h.service.Search(query, region))
}

// HandleGetRegions returns the distinct regions with a partner gym.
func (h *GymHandler) HandleGetRegions(c *fiber.Ctx) error {
	return c.JSON(h.service.Regions())
}

// HandleGetMapMarkers returns every gym with its projected panel position.
func (h *GymHandler) HandleGetMapMarkers(c *fiber.Ctx) error {
	return c.JSON(h.service.MapMarkers())
}
