package db

import (
	"context"
	"fmt"
	"log"
)

// schema holds the tables backing the informational pages, in creation order.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS FAQCategory (
		slug TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS FAQ (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		category TEXT NOT NULL REFERENCES FAQCategory(slug),
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS LegalSection (
		document TEXT NOT NULL,
		position INTEGER NOT NULL,
		heading TEXT NOT NULL,
		body TEXT NOT NULL,
		PRIMARY KEY (document, position)
	)`,
}

// Migrate creates any missing content tables
func Migrate(ctx context.Context) error {
	tx, err := BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	log.Printf("[db] schema up to date (%d tables)", len(schema))
	return nil
}
