package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/moto-pile/site/config"
	"github.com/moto-pile/site/content"
	"github.com/moto-pile/site/db"
	h "github.com/moto-pile/site/handlers"
	"github.com/moto-pile/site/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	if err := db.Init(config.DatabaseURL); err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	// Start loading page content
	loader, err := content.NewLoader(content.LoadSnapshot, content.LoaderConfig{
		RefreshEvery: config.ContentRefreshEvery,
		RefreshBurst: config.ContentRefreshBurst,
		CacheTTL:     config.ContentCacheTTL,
	})
	if err != nil {
		log.Fatalf("failed to start content loader: %v", err)
	}
	defer loader.Close()
	go loader.Run(ctx, config.ContentRefreshInterval)

	h.SetContentSource(loader)
	app := server.New()

	go func() {
		<-ctx.Done()
		log.Printf("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("error during shutdown: %v", err)
		}
	}()

	log.Printf("Starting server on port %s...", config.ServerPort)
	if err := app.Listen(":" + config.ServerPort); err != nil {
		log.Printf("server stopped: %v", err)
	}
}
