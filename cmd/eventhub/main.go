package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventhub-dev/eventhub/db"
	"github.com/eventhub-dev/eventhub/internal/auth"
	"github.com/eventhub-dev/eventhub/internal/blob"
	"github.com/eventhub-dev/eventhub/internal/config"
	"github.com/eventhub-dev/eventhub/internal/handlers"
	"github.com/eventhub-dev/eventhub/internal/live"
	"github.com/eventhub-dev/eventhub/internal/metrics"
	"github.com/eventhub-dev/eventhub/internal/router"
	"github.com/eventhub-dev/eventhub/internal/seed"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := auth.InitJWTSecret(cfg.JWTSecret); err != nil {
		log.Fatalf("Failed to initialize JWT: %v", err)
	}

	handlers.Domain = cfg.Domain

	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := db.ConnectDatabase(cfg.DatabaseDSN); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Seeding must finish before the router accepts traffic.
	if err := seed.Run(context.Background(), cfg.Seed); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	blobStore, err := blob.NewLocalStore(cfg.Upload.Dir)

	if err != nil {
		log.Fatalf("Failed to initialize blob store: %v", err)
	}

	handlers.ConfigureUploads(blobStore, cfg.Upload.MaxSize)
	handlers.Feed = live.NewHub()

	metrics.Register()

	r := router.NewRouter()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
