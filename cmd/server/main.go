package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/emeraldbistro/table-service/internal/catalog"
	"github.com/emeraldbistro/table-service/internal/config"
	"github.com/emeraldbistro/table-service/internal/engine"
	"github.com/emeraldbistro/table-service/internal/handler"
	"github.com/emeraldbistro/table-service/internal/queue"
	"github.com/emeraldbistro/table-service/internal/router"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	eng := engine.New(cat)

	// Redis is optional: with no client, caching and rate limiting
	// become pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}

	cacheCfg := config.LoadCacheConfig()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterOrders(e, handler.NewOrderHandler(eng), config.LoadRateLimitConfig(), rdb)
	router.RegisterManager(e, handler.NewManagerHandler(eng), cacheCfg, rdb)
	router.RegisterCatalog(e, handler.NewCatalogHandler(cat, eng), cacheCfg, rdb)

	// The background consumer stands in for the external reporting
	// collaborator; it is best-effort and never affects engine state.
	if cfg.SyncConsumer {
		go func() {
			if err := queue.StartOrderSyncConsumer(); err != nil {
				log.Printf("order sync consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, tables=%d, menu=%d)", addr, cfg.Env, len(cat.Tables), len(cat.Menu))

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
