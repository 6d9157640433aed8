package main

import (
	"log"

	"github.com/sanjanammmm/Monty-s-Magicians/config"
	"github.com/sanjanammmm/Monty-s-Magicians/internal/auth"
	"github.com/sanjanammmm/Monty-s-Magicians/internal/handler"
	"github.com/sanjanammmm/Monty-s-Magicians/internal/middleware"
	"github.com/sanjanammmm/Monty-s-Magicians/internal/repository"
	"github.com/sanjanammmm/Monty-s-Magicians/internal/service"
	"github.com/sanjanammmm/Monty-s-Magicians/pkg/database"
	"github.com/sanjanammmm/Monty-s-Magicians/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Booking events are best-effort: the service runs without a broker.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("rabbitmq unavailable, booking events disabled: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Repositories
	clubRepo := repository.NewClubRepository(db)
	spaceRepo := repository.NewSpaceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Service
	bookingSvc := service.NewBookingService(clubRepo, spaceRepo, bookingRepo, publisher)

	// Auth gate for booking creation and catalog administration
	verifier := auth.NewVerifier(cfg.JWTSecret, cfg.AllowedEmails, cfg.AllowedDomains)
	requireAuth := middleware.RequireIdentity(verifier)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "club-booking"})
	})

	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e, requireAuth)
	handler.NewCatalogHandler(clubRepo, spaceRepo).RegisterRoutes(e, requireAuth)

	log.Printf("Club booking service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
