package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/agri-quest/agriquest_api/seed/seeders"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, farmers, challenges, missions")
		dbPath   = flag.String("db", "", "Database path (overrides DB_DATABASE env var)")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	db, err := openDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	mainSeeder := seeders.NewMainSeeder(db)

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		err = mainSeeder.SeedAll()
	case "farmers":
		log.Println("Seeding farmers only...")
		err = mainSeeder.SeedFarmersOnly()
	case "challenges":
		log.Println("Seeding challenges only...")
		err = mainSeeder.SeedChallengesOnly()
	case "missions":
		log.Println("Seeding missions only...")
		err = mainSeeder.SeedMissionsOnly()
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all', 'farmers', 'challenges', or 'missions'", *seedType)
	}

	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding operation completed successfully!")
}

func openDatabase(override string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}

	if os.Getenv("DB_DRIVER") == "postgres" {
		return gorm.Open(postgres.Open(os.Getenv("DB_DSN")), config)
	}

	databasePath := override
	if databasePath == "" {
		databasePath = os.Getenv("DB_DATABASE")
		if databasePath == "" {
			databasePath = "agriquest.db"
		}
	}

	log.Printf("Connected to database: %s", databasePath)
	return gorm.Open(sqlite.Open(databasePath), config)
}

func showHelp() {
	log.Println(`
Database Seeding Tool for AgriQuest

Usage: go run seed/main.go [flags]

Flags:
  -type string
        Type of seeding to perform (default "all")
        Options: all, farmers, challenges, missions
  -db string
        Database path (overrides DB_DATABASE environment variable)
  -help
        Show this help message

Examples:
  # Seed everything
  go run seed/main.go

  # Seed only challenges
  go run seed/main.go -type=challenges

  # Seed with custom database path
  go run seed/main.go -db=./custom.db

Environment Variables:
  DB_DRIVER   - sqlite (default) or postgres
  DB_DATABASE - Default sqlite database path (default: agriquest.db)
  DB_DSN      - Postgres connection string when DB_DRIVER=postgres`)
}
