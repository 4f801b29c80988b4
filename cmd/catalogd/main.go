// catalogd serves the read-only catalog surface over HTTP.  It stands in
// for the external data backend: by default it exposes the fixture
// catalog, and with DB_* variables set it serves the same surface from
// MySQL.  With Redis configured, sold counts are overlaid live.
package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/eventory/miniapp-storefront/internal/catalog"
	"github.com/eventory/miniapp-storefront/internal/config"
	"github.com/eventory/miniapp-storefront/internal/database"
	"github.com/eventory/miniapp-storefront/internal/handler"
	"github.com/eventory/miniapp-storefront/internal/inventory"
	"github.com/eventory/miniapp-storefront/internal/queue"
	"github.com/eventory/miniapp-storefront/internal/repository"
	"github.com/eventory/miniapp-storefront/internal/router"
)

func main() {
	// Load .env when present; the OS environment wins otherwise.
	_ = godotenv.Load()
	cfg := config.Load()

	var store catalog.Store
	if cfg.UseMySQL {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("catalogd: open database: %v", err)
		}
		defer db.Close()
		store = repository.NewSQLStore(db)
		log.Printf("catalogd: serving catalog from MySQL %s/%s", cfg.DBHost, cfg.DBName)
	} else {
		store = catalog.NewFixtureStore()
		log.Printf("catalogd: serving fixture catalog")
	}

	if client := config.NewRedisClient(); client != nil {
		store = catalog.WithLiveCounts(store, inventory.NewRedisCounter(client))
		log.Printf("catalogd: live inventory overlay enabled")
	}

	// catalogd stands in for the booking backend, so it also drains the
	// intent queue when a broker is configured.
	if cfg.UseAMQP {
		go func() {
			if err := queue.StartIntentRelay(); err != nil {
				log.Printf("catalogd: intent relay stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, &handler.CatalogHandler{Store: store})

	addr := ":" + cfg.Port
	log.Printf("catalogd: listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
