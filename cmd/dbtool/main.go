package main

import (
	"context"
	"database/sql"
	"log"

	"route-summary-service/internal/adapters/repositories"
	"route-summary-service/internal/config"
	"route-summary-service/internal/platform/db"
)

func main() {
	config.LoadDotEnv()

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(context.Background(), databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/context.yaml")
	if err := initAndSeed(conn, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(conn *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Printf("Seeding depots and vehicles path=%s", seedPath)
	if err := repositories.SeedContext(conn, seedPath); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}
