// seed/main.go
package main

import (
	"flag"
	"log"
	"os"

	"github.com/emberholm-legacy/ember_api/seed/seeders"
	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, guilds, metadata")
		dbPath   = flag.String("db", "", "Database path (overrides DB_DATABASE env var)")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	databasePath := *dbPath
	if databasePath == "" {
		databasePath = os.Getenv("DB_DATABASE")
		if databasePath == "" {
			databasePath = "ember.db"
		}
	}

	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Printf("Connected to database: %s", databasePath)

	mainSeeder := seeders.NewMainSeeder(db)

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		if err := mainSeeder.SeedAll(); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	case "guilds":
		log.Println("Seeding guild roster only...")
		if err := mainSeeder.SeedGuildsOnly(); err != nil {
			log.Fatalf("Failed to seed guilds: %v", err)
		}
	case "metadata":
		log.Println("Seeding hero metadata only...")
		if err := mainSeeder.SeedMetadataOnly(); err != nil {
			log.Fatalf("Failed to seed metadata: %v", err)
		}
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all', 'guilds', or 'metadata'", *seedType)
	}

	log.Println("Seeding operation completed successfully!")
}

func showHelp() {
	log.Println(`
Database Seeding Tool for the Emberholm backend

Usage: go run seed/main.go [flags]

Flags:
  -type string
        Type of seeding to perform (default "all")
        Options: all, guilds, metadata
  -db string
        Database path (overrides DB_DATABASE environment variable)
  -help
        Show this help message

Environment Variables:
  DB_DATABASE - Default database path (default: ember.db)`)
}
