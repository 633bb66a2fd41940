package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/airline-seat-reservation/internal/config"
	"github.com/iliyamo/airline-seat-reservation/internal/database"
	"github.com/iliyamo/airline-seat-reservation/internal/handler"
	"github.com/iliyamo/airline-seat-reservation/internal/middleware"
	"github.com/iliyamo/airline-seat-reservation/internal/queue"
	"github.com/iliyamo/airline-seat-reservation/internal/repository"
	"github.com/iliyamo/airline-seat-reservation/internal/router"
	"github.com/iliyamo/airline-seat-reservation/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Redis backs the rate limiter and the response cache.  A nil
	// client disables both; the API stays up without Redis.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting and caching disabled")
	}

	store := repository.NewStore(db)
	booking := service.NewBookingService(store)
	search := service.NewSearchService(store)
	fleet := service.NewFleetService(store)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, store.Customers))
	router.RegisterPublic(e, handler.NewPublicHandler(search, fleet, store), cache)
	router.RegisterCustomer(e, handler.NewCustomerHandler(booking, store), cfg.JWTSecret)
	router.RegisterAdmin(e, handler.NewAdminHandler(fleet, store), cfg.JWTSecret)

	// Background consumer records reservation events published after
	// bookings and cancellations commit.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
