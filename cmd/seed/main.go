// Command main runs the database seeder for Chez Nous.
package main

import (
	"flag"
	"log"

	"cheznous/internal/config"
	"cheznous/internal/database"
	"cheznous/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numForums := flag.Int("forums", 15, "Number of forums to create")
	postsPerForum := flag.Int("posts", 10, "Posts per forum")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	categoriesOnly := flag.Bool("categories-only", false, "Seed only the fixed categories")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Categories(database.DB); err != nil {
		log.Fatalf("Category seeding failed: %v", err)
	}
	if *categoriesOnly {
		log.Println("Fixed categories are in place.")
		return
	}

	s := seed.NewSeeder(database.DB)
	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	users, err := s.SeedUsers(*numUsers)
	if err != nil {
		log.Fatalf("User seeding failed: %v", err)
	}
	forums, err := s.SeedForums(users, *numForums)
	if err != nil {
		log.Fatalf("Forum seeding failed: %v", err)
	}
	if err := s.SeedEngagement(users, forums, *postsPerForum); err != nil {
		log.Fatalf("Engagement seeding failed: %v", err)
	}

	log.Println("All done! The database is populated with demo data.")
	log.Printf("All demo accounts share the password: %s", seed.DemoPassword)
}
