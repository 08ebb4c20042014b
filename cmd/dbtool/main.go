package main

import (
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"trip-scheduler-service/internal/adapters/cache"
	"trip-scheduler-service/internal/platform/db"
)

// dbtool initializes the cache schema without starting the server.
// Useful for provisioning a database ahead of a deploy.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pool, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	log.Println("Initializing cache schema...")
	if err := cache.InitSchema(pool); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}
