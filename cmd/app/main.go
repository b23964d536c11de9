package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meganrobin/Item-Management-API/internal/catalog"
	"github.com/meganrobin/Item-Management-API/internal/config"
	"github.com/meganrobin/Item-Management-API/internal/database"
	"github.com/meganrobin/Item-Management-API/internal/database/postgres"
	"github.com/meganrobin/Item-Management-API/internal/handler"
	"github.com/meganrobin/Item-Management-API/internal/inventory"
	"github.com/meganrobin/Item-Management-API/internal/player"
	"github.com/meganrobin/Item-Management-API/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	playerRepo := postgres.NewPlayerRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	enchantmentRepo := postgres.NewEnchantmentRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)

	playerService := player.NewService(playerRepo)
	inventoryService := inventory.NewService(playerRepo, itemRepo, enchantmentRepo, inventoryRepo)
	catalogService := catalog.NewService(itemRepo, enchantmentRepo)

	handler.InitValidator()

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, playerService, inventoryService, catalogService)

	// Serve until interrupted, then drain in-flight requests
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			log.Fatalf("Graceful shutdown failed: %v", err)
		}
	}
}
