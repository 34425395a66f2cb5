package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/config"
	"github.com/iliyamo/movie-ticket-booking/internal/database"
	"github.com/iliyamo/movie-ticket-booking/internal/handler"
	"github.com/iliyamo/movie-ticket-booking/internal/queue"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	"github.com/iliyamo/movie-ticket-booking/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	store, err := database.Open(cfg.DataFile)
	if err != nil {
		log.Fatalf("open snapshot store: %v", err)
	}

	userRepo := repository.NewUserRepo(store)
	movieRepo := repository.NewMovieRepo(store)
	bookingRepo := repository.NewBookingRepo(store)

	rdb := config.NewRedisClient() // nil disables caching and rate limiting
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, userRepo))
	router.RegisterCatalogue(e, handler.NewMovieHandler(movieRepo), rdb)
	router.RegisterBookings(e, handler.NewBookingHandler(bookingRepo), rdb)

	// Consume booking events in the background; the consumer reconnects
	// on its own and never stops the server.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, data=%s)", addr, cfg.Env, store.Path())

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
