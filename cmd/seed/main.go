// Command main runs the database seeder for Tandem.
package main

import (
	"flag"
	"log"

	"tandem/internal/config"
	"tandem/internal/database"
	"tandem/internal/seed"
)

func main() {
	numUsers := flag.Int("users", seed.DefaultOptions.Users, "Number of users to create")
	friendRatio := flag.Float64("friend-ratio", seed.DefaultOptions.FriendshipRatio, "Fraction of user pairs that become friends")
	pending := flag.Int("pending", seed.DefaultOptions.PendingRequests, "Number of pending friend requests to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")
	log.Printf("Target: %d users, friend-ratio=%.2f, %d pending requests, clean=%v\n",
		*numUsers, *friendRatio, *pending, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		Users:           *numUsers,
		FriendshipRatio: *friendRatio,
		PendingRequests: *pending,
		Clean:           *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
