package config

import (
	"log"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
)

// AutoMigrate keeps the schema in step with the models and provisions
// the shop name sequence.
func AutoMigrate() {
	if err := Gorm.AutoMigrate(
		&models.User{},
		&models.UserAddress{},
		&models.Product{},
		&models.SearchLog{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	if err := Gorm.Exec("CREATE SEQUENCE IF NOT EXISTS shop_name_seq").Error; err != nil {
		log.Fatalf("❌ Failed to create shop name sequence: %v", err)
	}

	log.Println("✅ Schema migrated")
}
