package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/emeraldbistro/table-service/internal/config"
	"github.com/emeraldbistro/table-service/internal/handler"
	"github.com/emeraldbistro/table-service/internal/middleware"
)

// RegisterRoutes registers the health check on the provided Echo
// instance.  This endpoint can be used by load balancers or monitoring
// systems to verify that the service is up and running.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterOrders registers the order lifecycle endpoints under /v1.
// The token-bucket rate limiter is applied to the whole group so a
// misbehaving client cannot flood the intake path; the limiter is a
// no-op when rdb is nil.
func RegisterOrders(e *echo.Echo, o *handler.OrderHandler, rl config.RateLimitConfig, rdb *redis.Client) {
	g := e.Group("/v1/orders")
	g.Use(middleware.NewTokenBucket(rl, rdb))
	// Create an order: computes the bill, then seats or enqueues the party.
	g.POST("", o.CreateOrder)
	// Kitchen/active view filtered by ?status=a,b (defaults to PREPARING).
	g.GET("", o.ListOrders)
	// Kitchen marks an order ready to serve.
	g.POST("/:id/ready", o.MarkReady)
	// Revise discount and/or payment method while the order is active.
	g.PATCH("/:id", o.ReviseOrder)
	// Fetch the bill; searches the active ledger, then the archive.
	g.GET("/:id/bill", o.GetBill)
}

// RegisterManager registers the floor-management endpoints: the
// dashboard snapshot, checkout (free table) and aggregate stats.  Stats
// tolerate the short cache TTL; the dashboard and checkout never go
// through the cache.
func RegisterManager(e *echo.Echo, m *handler.ManagerHandler, cc config.CacheConfig, rdb *redis.Client) {
	e.GET("/v1/manager", m.Dashboard)
	e.POST("/v1/tables/:number/free", m.FreeTable)
	e.GET("/v1/stats", m.Stats, middleware.NewRedisCache(cc, rdb))
}

// RegisterCatalog registers the read-only menu and table views.  These
// are the natural candidates for the redis response cache, which
// degrades to a pass-through when rdb is nil.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, cc config.CacheConfig, rdb *redis.Client) {
	cache := middleware.NewRedisCache(cc, rdb)
	e.GET("/v1/menu", h.Menu, cache)
	e.GET("/v1/tables", h.Tables)
}
