package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UkralStul/blog-mvc/internal/api"
	"github.com/UkralStul/blog-mvc/internal/config"
	"github.com/UkralStul/blog-mvc/internal/storage"
	"github.com/UkralStul/blog-mvc/internal/storage/inmemory"
	"github.com/UkralStul/blog-mvc/internal/storage/postgres"
	"github.com/UkralStul/blog-mvc/internal/storage/sqlite"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "Path to config file (yaml, json or toml)")
	storageType := flag.String("storage", "", "Storage type (sqlite, postgres or in-memory)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *storageType != "" {
		cfg.Storage = *storageType
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	log.Printf("Starting server with %s storage", cfg.Storage)
	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("failed to open %s storage: %v", cfg.Storage, err)
	}

	seeded, err := storage.SeedWelcomePost(context.Background(), store)
	if err != nil {
		log.Fatalf("failed to seed storage: %v", err)
	}
	if seeded {
		log.Println("Inserted welcome post into empty storage")
	}

	logger := log.Default()
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewHandler(store, logger).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Ctrl+C / SIGTERM: дожидаемся активных запросов и закрываем хранилище
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Blog REST API listening on %s (posts at /api/posts)", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server failed: %v", err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("graceful shutdown failed: %v", err)
		}
		cancel()
	}

	if err := store.Close(); err != nil {
		log.Printf("failed to close storage: %v", err)
	}
	log.Println("Server stopped")
}

func openStore(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		return postgres.New(cfg.DatabaseURL, cfg.LogSQL)
	case config.StorageInMemory:
		return inmemory.New(), nil
	default:
		return sqlite.New(cfg.SQLitePath)
	}
}
