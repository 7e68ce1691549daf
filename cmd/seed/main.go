// Command seed creates a demo database with sample clients, books and sales.
// Usage: go run ./cmd/seed [-db path/to/demo.db] [-keep]
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/bookexchange/internal/cli"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	keep := flag.Bool("keep", false, "seed into the existing database instead of starting fresh")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	if err := cli.SeedDatabase(context.Background(), os.Stdout, *dbPath, bcrypt.DefaultCost, !*keep); err != nil {
		log.Fatalf("Failed to generate demo database: %v", err)
	}

	log.Println("Demo database generated successfully!")
}
