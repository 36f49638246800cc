package main

import (
	"log"

	"numero-be/internal/config"
	"numero-be/internal/model"
	"numero-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.Options{Quiet: true})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running migration (enums, then AutoMigrate)...")
	if err := model.Migrate(db); err != nil {
		log.Fatalf("Error: migration failed: %v", err)
	}

	log.Println("✅ Migration complete")
}
