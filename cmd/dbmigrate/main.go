package main

import (
	"flag"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/KOSMOS-DESIGN/kosmos-design/internal/config"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/models"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/storage"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to configuration file")
	action := flag.String("action", "migrate", "Action to perform (migrate, reset, status)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := storage.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	db := storage.GetDB()
	if db == nil {
		log.Fatalf("Failed to get database connection")
	}

	switch *action {
	case "migrate":
		if err := migrateDatabase(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migration completed successfully")
	case "reset":
		if err := resetDatabase(db); err != nil {
			log.Fatalf("Reset failed: %v", err)
		}
		log.Println("Database reset completed successfully")
	case "status":
		if err := checkStatus(db); err != nil {
			log.Fatalf("Status check failed: %v", err)
		}
	default:
		log.Fatalf("Unknown action: %s", *action)
	}
}

func migrateDatabase(db *gorm.DB) error {
	fmt.Println("Migrating database...")

	if err := db.AutoMigrate(&models.Message{}); err != nil {
		return fmt.Errorf("failed to migrate Message model: %w", err)
	}
	if err := db.AutoMigrate(&models.BlacklistEntry{}); err != nil {
		return fmt.Errorf("failed to migrate BlacklistEntry model: %w", err)
	}

	return nil
}

// resetDatabase drops tables and recreates them
func resetDatabase(db *gorm.DB) error {
	fmt.Println("Resetting database...")

	fmt.Print("WARNING: This will delete all data! Are you sure? (y/N): ")
	var confirmation string
	fmt.Scanln(&confirmation)

	if confirmation != "y" && confirmation != "Y" {
		return fmt.Errorf("operation cancelled by user")
	}

	if err := db.Migrator().DropTable(&models.Message{}, &models.BlacklistEntry{}); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}

	return migrateDatabase(db)
}

func checkStatus(db *gorm.DB) error {
	fmt.Println("Checking database status...")

	tables := []struct {
		name  string
		model interface{}
	}{
		{"messages", &models.Message{}},
		{"blacklist", &models.BlacklistEntry{}},
	}

	for _, t := range tables {
		if db.Migrator().HasTable(t.model) {
			var count int64
			db.Model(t.model).Count(&count)
			fmt.Printf("✅ %s table exists (%d records)\n", t.name, count)
		} else {
			fmt.Printf("❌ %s table does not exist\n", t.name)
		}
	}

	return nil
}
