package migration

import (
	"Planta-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Plant{}); err != nil {
		log.Fatalf("Error migrating plant database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CareLogEntry{}); err != nil {
		log.Fatalf("Error migrating care log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Reminder{}); err != nil {
		log.Fatalf("Error migrating reminder database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
