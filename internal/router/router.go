package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-ticket-booking/internal/config"
	"github.com/iliyamo/movie-ticket-booking/internal/handler"
	"github.com/iliyamo/movie-ticket-booking/internal/middleware"
)

// RegisterRoutes registers the health check on the provided Echo
// instance.  This endpoint can be used by load balancers or monitoring
// systems to verify that the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the signup endpoint.  There is no login or
// session handling; the API identifies users by the ID in the path.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/signup", a.Signup)
}

// RegisterCatalogue registers the read-only movie browsing endpoints.
// Responses are served through the Redis cache when one is configured;
// with rdb nil the middleware is a pass-through.
func RegisterCatalogue(e *echo.Echo, m *handler.MovieHandler, rdb *redis.Client) {
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	g := e.Group("", cache)
	g.GET("/movies", m.GetMovies)
	g.GET("/movies/:movieId", m.GetMovie)
	g.GET("/movies/:movieId/shows", m.GetShows)
}

// RegisterBookings registers the booking CRUD and summary endpoints.
// The mutating routes run behind the token-bucket rate limiter so a
// misbehaving client cannot hammer the snapshot file.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler, rdb *redis.Client) {
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e.POST("/bookings/:userId", b.CreateBooking, limit)
	e.PUT("/bookings/:userId/:bookingId", b.UpdateBooking, limit)
	e.DELETE("/bookings/:userId/:bookingId", b.CancelBooking, limit)

	e.GET("/bookings/:userId", b.ListBookings)
	e.GET("/bookings/:userId/:bookingId", b.GetBooking)
	e.GET("/summary/:userId", b.GetSummary)
}
