package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/umeshpagere/cepl-kumbh-mela/config"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/directory"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/handler"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/middleware"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/payment"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/repository"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/service"
	"github.com/umeshpagere/cepl-kumbh-mela/pkg/cache"
	"github.com/umeshpagere/cepl-kumbh-mela/pkg/database"
	"github.com/umeshpagere/cepl-kumbh-mela/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())
	redisClient := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)

	// Notifications are fire-and-forget; a missing broker only disables them.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("rabbitmq unavailable, notifications disabled: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	ctx := context.Background()

	// Seed the timetable on first start, then load the whole directory once.
	// It stays immutable for the life of the process.
	dirRepo := repository.NewDirectoryRepository(db)
	if err := dirRepo.Seed(ctx, directory.SampleStations(), directory.SampleTrains()); err != nil {
		log.Fatalf("failed to seed directory: %v", err)
	}
	stations, err := dirRepo.Stations(ctx)
	if err != nil {
		log.Fatalf("failed to load stations: %v", err)
	}
	trains, err := dirRepo.Trains(ctx)
	if err != nil {
		log.Fatalf("failed to load trains: %v", err)
	}
	dir := directory.New(stations, trains)

	cartRepo := repository.NewCartRepository(redisClient)
	orderRepo := repository.NewOrderRepository(db)

	searchSvc := service.NewSearchService(dir)
	cartSvc := service.NewCartService(cartRepo, orderRepo, payment.NewSimulatedGateway(), publisher)

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
	e.Use(echoMw.CORSWithConfig(echoMw.CORSConfig{
		AllowOrigins:     cfg.AllowOrigins,
		AllowCredentials: true,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "kumbh-trip-service"})
	})

	handler.NewSearchHandler(searchSvc).RegisterRoutes(e)
	handler.NewCartHandler(cartSvc).RegisterRoutes(e)
	handler.NewReminderHandler().RegisterRoutes(e)

	log.Printf("Kumbh trip service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
