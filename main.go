package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"suggestion-app/internal/cache"
	"suggestion-app/internal/config"
	"suggestion-app/internal/database"
	"suggestion-app/internal/seed"

	sentry "github.com/getsentry/sentry-go"
)

// main bootstraps the suggestion storage layer: it connects to MongoDB,
// creates the indexes the repositories rely on and, when configured, seeds
// the default categories and statuses. The presentation layer lives
// elsewhere and consumes the repositories this package wires up.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.AppEnv,
		Release:     cfg.Version,
		Debug:       cfg.Debug,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Flush(2 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := database.Connect(ctx, cfg)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal(err)
	}
	defer func() {
		if err := conn.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
			sentry.CaptureException(err)
		} else {
			log.Println("Disconnected from MongoDB.")
		}
	}()

	if err := conn.EnsureIndexes(ctx); err != nil {
		sentry.CaptureException(err)
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	memCache := cache.NewMemory(10 * time.Minute)
	categoryData := database.NewMongoCategoryData(conn, memCache)
	statusData := database.NewMongoStatusData(conn, memCache)
	userData := database.NewMongoUserData(conn)
	suggestionData := database.NewMongoSuggestionData(conn, userData, memCache)

	if cfg.SeedDefaults {
		if err := seed.EnsureDefaults(ctx, categoryData, statusData); err != nil {
			sentry.CaptureException(err)
			log.Fatalf("Failed to seed defaults: %v", err)
		}
	}

	suggestions, err := suggestionData.GetAllSuggestions(ctx)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatalf("Failed to load suggestions: %v", err)
	}
	log.Printf("Storage ready: %d active suggestions.", len(suggestions))
}
