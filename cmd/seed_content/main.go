package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/moto-pile/site/config"
	"github.com/moto-pile/site/content"
	"github.com/moto-pile/site/db"
)

func main() {
	reset := flag.Bool("reset", false, "remove the database file before seeding")
	flag.Parse()

	dbFile := config.DatabaseURL

	// Remove old DB if asked to
	if *reset {
		if _, err := os.Stat(dbFile); err == nil {
			if err := os.Remove(dbFile); err != nil {
				log.Fatalf("Failed to remove old DB: %v", err)
			}
			log.Printf("Removed %s", dbFile)
		}
	}

	if err := db.Init(dbFile); err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	if err := content.Seed(ctx); err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}

	s, err := content.LoadSnapshot(ctx)
	if err != nil {
		log.Fatalf("Failed to read back content: %v", err)
	}
	log.Printf("Seeded %d categories, %d faqs and %d legal documents into %s",
		len(s.Categories), len(s.FAQs), len(s.Legal), dbFile)
}
