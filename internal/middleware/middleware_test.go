package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticket-booking/internal/config"
)

// Without Redis both middlewares must be transparent: the service keeps
// serving bookings even when the cache/limiter backend is down.

func TestTokenBucketWithoutRedisPassesThrough(t *testing.T) {
	e := echo.New()
	cfg := config.RateLimitConfig{Enabled: true, Capacity: 1, RefillTokens: 1, RefillInterval: time.Second, TTL: time.Minute}
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	}, NewTokenBucket(cfg, nil))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestTokenBucketDisabledPassesThrough(t *testing.T) {
	e := echo.New()
	cfg := config.RateLimitConfig{Enabled: false}
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	}, NewTokenBucket(cfg, nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRedisCacheWithoutRedisPassesThrough(t *testing.T) {
	e := echo.New()
	cfg := config.CacheConfig{Enabled: true, Methods: map[string]bool{"GET": true}, TTL: time.Minute, Prefix: "cache", MaxBodyBytes: 1 << 20}
	calls := 0
	e.GET("/movies", func(c echo.Context) error {
		calls++
		return c.String(http.StatusOK, "catalogue")
	}, NewRedisCache(cfg, nil))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-Cache"))
	}
	assert.Equal(t, 3, calls, "every request must reach the handler")
}

func TestRateKeyStrategies(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/bookings/1", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/bookings/:userId")

	base := config.RateLimitConfig{Prefix: "rl"}

	base.KeyStrategy = "ip"
	assert.Equal(t, "rl:ip:192.0.2.1", rateKey(base, c))

	base.KeyStrategy = "route"
	assert.Equal(t, "rl:route:POST /bookings/:userId", rateKey(base, c))

	base.KeyStrategy = "ip_route"
	assert.Equal(t, "rl:ip:192.0.2.1:route:POST /bookings/:userId", rateKey(base, c))
}
