package migration

import (
	"fmt"
	"log"

	"github.com/rubeenavs/foodwise/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GroceryBatch{}); err != nil {
		log.Fatalf("Error migrating grocery batch database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.BillScan{}); err != nil {
		log.Fatalf("Error migrating bill scan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CookingEvent{}); err != nil {
		log.Fatalf("Error migrating cooking event database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.WeeklyWaste{}); err != nil {
		log.Fatalf("Error migrating weekly waste database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
