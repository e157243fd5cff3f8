// Command migrate loads the embedded clinic dataset into MongoDB so external
// tools can query it. The live assistant never reads this collection; it
// serves reporting and data inspection.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"swasthyaguide-backend/config"
	"swasthyaguide-backend/data"
	"swasthyaguide-backend/database"
	"swasthyaguide-backend/models"
)

func main() {
	drop := flag.Bool("drop", false, "delete existing clinics before loading")
	flag.Parse()

	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg := config.Get()

	if !cfg.HasDatabase() {
		log.Fatal("No database configured; set DATABASE_URL or DB_HOST")
	}

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Disconnect()

	entries, err := data.Load()
	if err != nil {
		log.Fatalf("Failed to load clinic dataset: %v", err)
	}

	var clinics []models.Clinic
	for _, entry := range entries {
		clinics = append(clinics, entry.Clinics...)
	}

	repo := database.NewClinicRepository(database.GetMongoDB())
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if *drop {
		deleted, err := repo.DeleteAll(ctx)
		if err != nil {
			log.Fatalf("Failed to clear clinics: %v", err)
		}
		log.Printf("Deleted %d existing clinics", deleted)
	}

	if err := repo.InsertMany(ctx, clinics); err != nil {
		log.Fatalf("Failed to insert clinics: %v", err)
	}

	total, err := repo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count clinics: %v", err)
	}
	log.Printf("Loaded %d clinics from %d locations; collection now holds %d", len(clinics), len(entries), total)
}
