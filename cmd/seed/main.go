package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/config"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/services"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/utils"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a demo seller with addresses and a couple of discounted
// products, then prints a session token for local testing.
// Usage: go run cmd/seed/main.go
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("CHOVIET MARKETPLACE - Demo Data Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	config.AutoMigrate()
	log.Println("✓ Connected to database")

	seller := seedSeller()
	seedAddresses(seller)
	seedProducts(seller)

	token, err := utils.GenerateJWT(seller.ID, seller.Email, seller.Username)
	if err != nil {
		log.Printf("⚠️ Could not mint a dev session token: %v", err)
	} else {
		fmt.Println()
		fmt.Println("Dev session token (send as 'token' cookie or Bearer header):")
		fmt.Println(token)
	}
}

func seedSeller() *models.User {
	const email = "seller@choviet.dev"

	var existing models.User
	if err := config.Gorm.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("✓ Seller %s already seeded", email)
		return &existing
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("choviet-dev"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	shopName, err := services.NextShopName(ctx)
	if err != nil {
		log.Fatalf("Failed to allocate shop name: %v", err)
	}

	seller := models.User{
		Username:     "Cửa hàng vật liệu Minh Anh",
		Email:        email,
		PasswordHash: string(hash),
		Role:         "seller",
		Shop: &models.ShopInfo{
			ShopName:      shopName,
			ShopAvatars:   models.DefaultShopAvatar,
			ShopCreatedAt: time.Now(),
		},
	}
	if err := config.Gorm.Create(&seller).Error; err != nil {
		log.Fatalf("Failed to seed seller: %v", err)
	}

	log.Printf("✓ Seller seeded: %s (%s)", seller.Email, shopName)
	return &seller
}

func seedAddresses(seller *models.User) {
	var count int64
	config.Gorm.Model(&models.UserAddress{}).Where("user_id = ?", seller.ID).Count(&count)
	if count > 0 {
		log.Println("✓ Addresses already seeded")
		return
	}

	addresses := []models.UserAddress{
		{
			UserID:   seller.ID,
			FullName: "Minh Anh",
			Phone:    "0901234567",
			Street:   "121 Lê Thanh Nghĩa",
			Address:  "Đông Tâm, Hai Bà Trưng, Hà Nội",
			IsPickup: true,
		},
		{
			UserID:    seller.ID,
			FullName:  "Minh Anh",
			Phone:     "0901234567",
			Street:    "45 Nguyễn Trãi",
			Address:   "Thanh Xuân, Hà Nội",
			IsDefault: true,
		},
	}
	for i := range addresses {
		if err := config.Gorm.Create(&addresses[i]).Error; err != nil {
			log.Fatalf("Failed to seed address: %v", err)
		}
	}

	log.Printf("✓ %d addresses seeded", len(addresses))
}

func seedProducts(seller *models.User) {
	var count int64
	config.Gorm.Model(&models.Product{}).Where("user_id = ?", seller.ID).Count(&count)
	if count > 0 {
		log.Println("✓ Products already seeded")
		return
	}

	now := time.Now()
	weekOut := now.AddDate(0, 0, 7)

	products := []models.Product{
		{
			Name:            "Gạch lát nền 60x60",
			Price:           200000,
			Category:        "Gạch, Đá & Kính",
			UserID:          seller.ID.String(),
			Warehouse:       120,
			Warranty:        "12 tháng",
			ManufactureDate: datatypes.Date(now.AddDate(0, -2, 0)),
			Manufacturer:    "Viglacera",
			Description:     "Gạch lát nền men bóng, kích thước 60x60.",
			Media:           models.MediaList{"/uploads/product/gach-lat-nen-60x60-cover.webp"},
			Sold:            34,
			Discount: models.DiscountConfig{
				PercentDiscount: &models.PercentDiscount{
					Percent:       10,
					LimitQuantity: 100,
					StartDate:     &now,
					EndDate:       &weekOut,
				},
				Codes: []models.DiscountCode{
					{Code: "GIAM20", Type: "percent", Value: 20, MaxDiscount: 30000, UsageLimit: 50, StartDate: &now},
					{Code: "GIAM50K", Type: "fixed", Value: 50000, UsageLimit: 20, StartDate: &now, ExpiresAt: &weekOut},
				},
			},
		},
		{
			Name:            "Xi măng PCB40",
			Price:           95000,
			Category:        "Xi măng & Phụ gia",
			UserID:          seller.ID.String(),
			Warehouse:       500,
			Warranty:        "6 tháng",
			ManufactureDate: datatypes.Date(now.AddDate(0, -1, 0)),
			Manufacturer:    "Hà Tiên",
			Description:     "Xi măng đa dụng PCB40 bao 50kg.",
			Media:           models.MediaList{"/uploads/product/xi-mang-pcb40-cover.webp"},
			Sold:            12,
		},
	}
	for i := range products {
		if err := config.Gorm.Create(&products[i]).Error; err != nil {
			log.Fatalf("Failed to seed product: %v", err)
		}
	}

	log.Printf("✓ %d products seeded", len(products))
}
