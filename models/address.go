package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserAddress struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `json:"userId" gorm:"column:user_id;type:uuid;not null;index"`
	FullName   string    `json:"fullName" gorm:"type:varchar(100);not null"`
	Phone      string    `json:"phone" gorm:"type:varchar(20);not null"`
	Address    string    `json:"address" gorm:"type:varchar(255);not null"` // detail address, province last: "Đông Tâm, Hai Bà Trưng, Hà Nội"
	Street     string    `json:"street" gorm:"type:varchar(255)"`           // street / building / house number
	DistrictID string    `json:"districtId" gorm:"column:district_id;type:varchar(20)"`
	IsDefault  bool      `json:"isDefault" gorm:"default:false;index:idx_addresses_is_default,where:is_default = true"`
	IsPickup   bool      `json:"isPickup" gorm:"default:false;index:idx_addresses_is_pickup,where:is_pickup = true"`
	IsReturn   bool      `json:"isReturn" gorm:"default:false"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"-" gorm:"autoUpdateTime"`

	// Relationship
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (UserAddress) TableName() string {
	return "user_addresses"
}

func (a *UserAddress) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type AddAddressRequest struct {
	FullName   string `json:"fullName" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address" binding:"required"`
	Street     string `json:"street"`
	DistrictID string `json:"districtId"`
	IsDefault  bool   `json:"isDefault"`
	IsPickup   bool   `json:"isPickup"`
	IsReturn   bool   `json:"isReturn"`
}

type UpdateAddressRequest struct {
	FullName   *string `json:"fullName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	Street     *string `json:"street,omitempty"`
	DistrictID *string `json:"districtId,omitempty"`
	IsReturn   *bool   `json:"isReturn,omitempty"`
}
