// Command main runs the database seeder for Tastebook.
package main

import (
	"flag"
	"log"

	"tastebook/internal/config"
	"tastebook/internal/database"
	"tastebook/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	maxRecipes := flag.Int("max-recipes", 5, "Maximum recipes per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(*numUsers, *maxRecipes); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with demo data.")
	log.Println("All seeded users have the password: password123")
}
