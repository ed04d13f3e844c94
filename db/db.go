package db

import (
	"context"
	"database/sql"
	"log"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

var (
	db   *sql.DB
	once sync.Once
)

// Init opens the sqlite database once and verifies the connection
func Init(databaseURL string) error {
	var err error
	once.Do(func() {
		db, err = sql.Open("sqlite3", databaseURL)
		if err != nil {
			log.Printf("[db] failed to open database: %v", err)
			return
		}

		if err = db.Ping(); err != nil {
			log.Printf("[db] failed to ping database: %v", err)
			return
		}

		log.Printf("[db] database initialized: %s", databaseURL)
	})
	return err
}

// Get returns the database connection
func Get() *sql.DB {
	if db == nil {
		panic("database not initialized, call db.Init() first")
	}
	return db
}

// SetForTesting sets the database connection for testing
func SetForTesting(database *sql.DB) {
	db = database
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// Ping reports whether the database is reachable
func Ping(ctx context.Context) error {
	return Get().PingContext(ctx)
}

func QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return Get().QueryContext(ctx, query, args...)
}

func QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return Get().QueryRowContext(ctx, query, args...)
}

func ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return Get().ExecContext(ctx, query, args...)
}

// BeginTx starts a new transaction
func BeginTx(ctx context.Context) (*sql.Tx, error) {
	return Get().BeginTx(ctx, nil)
}
