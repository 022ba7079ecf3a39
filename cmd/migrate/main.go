package main

import (
	"flag"
	"log"

	"github.com/pageza/healthscan/backend/config"
	"github.com/pageza/healthscan/backend/internal/database"
)

func main() {
	reset := flag.Bool("reset", false, "Drop all application tables before migrating")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if *reset {
		if config.IsProduction() {
			log.Fatal("refusing to reset the production database")
		}
		log.Println("Dropping all tables...")
		if err := database.DropAll(db); err != nil {
			log.Fatalf("failed to drop tables: %v", err)
		}
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	log.Println("All migrations applied successfully.")
}
