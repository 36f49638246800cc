package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"numero-be/internal/config"
	"numero-be/internal/repository/unitofwork"
	"numero-be/internal/service"
	"numero-be/pkg/curriculum"
	"numero-be/pkg/database"
)

func main() {
	path := flag.String("file", "data/curriculum.md", "curriculum outline to import")
	flag.Parse()

	cfg := config.Load()

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("Error: cannot open %s: %v", *path, err)
	}
	defer f.Close()

	units, err := curriculum.Parse(f)
	if err != nil {
		log.Fatalf("Error: cannot parse %s: %v", *path, err)
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.Options{Quiet: true})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	svc := service.NewCurriculumService(unitofwork.NewRepositoryFactory(db), time.Minute)
	n, err := svc.Import(ctx, units)
	if err != nil {
		log.Fatalf("Error: import failed: %v", err)
	}

	log.Printf("✅ Seeded %d units, %d subtopics", len(units), n)
}
