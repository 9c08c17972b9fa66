package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"

	"renewrubber/internal/config"
	"renewrubber/internal/fixtures"
	"renewrubber/internal/handlers"
	"renewrubber/internal/middleware"
	"renewrubber/internal/repositories"
	"renewrubber/internal/services"
	"renewrubber/internal/storage"
	"renewrubber/pkg/events"
)

func main() {
	cfg := config.Load()

	// --- Key-value store backing the cart and session ---
	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer store.Close()

	// --- Order event publisher ---
	// Events go to RabbitMQ when a broker is configured, the log otherwise.
	var publisher events.Publisher
	var consumer *events.AMQPPublisher
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("Failed to initialize AMQP publisher: %v", err)
		}
		publisher = amqpPublisher
		consumer = amqpPublisher
	} else {
		publisher = events.NewLogPublisher()
	}
	defer publisher.Close()

	// --- Fixture data ---
	products, err := fixtures.Products()
	if err != nil {
		log.Fatalf("Failed to load product fixtures: %v", err)
	}
	gyms, err := fixtures.Gyms()
	if err != nil {
		log.Fatalf("Failed to load gym fixtures: %v", err)
	}
	orders, err := fixtures.Orders()
	if err != nil {
		log.Fatalf("Failed to load order fixtures: %v", err)
	}

	// --- Repositories ---
	catalogRepo := repositories.NewFixtureCatalogRepository(products,
		repositories.CatalogListDelay, repositories.CatalogGetDelay)
	orderRepo := repositories.NewFixtureOrderRepository(orders, repositories.OrderListDelay)

	// --- Stores and services ---
	// The cart and auth stores are singletons: constructed once here,
	// hydrated from the KV store, and injected into the handlers.
	cartService := services.NewCartService(store, services.DefaultCartAnimation)
	authService := services.NewAuthService(store, cfg.JWTSecret, services.DefaultAuthDelays)
	catalogService := services.NewCatalogService(catalogRepo)
	orderService := services.NewOrderService(orderRepo)
	checkoutService := services.NewCheckoutService(cartService, publisher, services.DefaultCheckoutDelay)
	gymService := services.NewGymService(gyms)

	// --- Handlers ---
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService, catalogService)
	authHandler := handlers.NewAuthHandler(authService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(orderService)
	gymHandler := handlers.NewGymHandler(gymService)
	contactHandler := handlers.NewContactHandler()

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")
	catalogHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)
	authHandler.RegisterRoutes(apiV1)
	checkoutHandler.RegisterRoutes(apiV1)
	gymHandler.RegisterRoutes(apiV1)
	contactHandler.RegisterRoutes(apiV1)

	// Dashboard routes require a session.
	dashboard := apiV1.Group("", middleware.AuthRequired(authService))
	orderHandler.RegisterRoutes(dashboard)
	authHandler.RegisterProtectedRoutes(dashboard)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Catch-all: unknown routes render as a not-found view, not an error.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Page not found",
			"path":    c.Path(),
		})
	})

	// --- AMQP consumer ---
	// When a broker is configured, consume our own order events the way a
	// fulfilment worker would.
	if consumer != nil {
		go func() {
			log.Println("Starting order event consumer...")
			err := consumer.Consume(func(msg amqp.Delivery) error {
				log.Printf("Received order event (%s): %s", msg.Type, msg.Body)
				return nil
			})
			if err != nil {
				log.Printf("Failed to start order event consumer: %v", err)
			}
		}()
	}

	// --- Start HTTP server with graceful shutdown ---
	log.Printf("Starting server on %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// openStore selects the KV driver from configuration.
func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StoreDriver {
	case "sqlite":
		return storage.NewSQLiteStore(cfg.StorePath)
	case "redis":
		return storage.NewRedisStore(cfg.RedisAddr)
	default:
		return storage.NewMemoryStore(), nil
	}
}
