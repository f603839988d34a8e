package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShopInfo is the embedded seller sub-document. Nil means the user has
// never opened a shop.
type ShopInfo struct {
	ShopName      string    `json:"shopName"`
	ShopAvatars   string    `json:"shopAvatars"`
	ShopCreatedAt time.Time `json:"shopCreatedAt"`
}

const (
	// DefaultShopName is shown when a product's seller has no shop record.
	DefaultShopName = "Không rõ"
	// DefaultShopAvatar is the fallback avatar path for shop badges.
	DefaultShopAvatar = "/uploads/shopAvatars/shopAvatars.webp"
)

type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Username     string     `json:"username" gorm:"type:varchar(255);not null"`
	Email        string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone        *string    `json:"phone,omitempty" gorm:"type:varchar(50);index:idx_users_phone,where:phone IS NOT NULL"`
	Birthday     *time.Time `json:"birthday,omitempty"`
	Gender       *string    `json:"gender,omitempty" gorm:"type:varchar(20)"`
	PasswordHash string     `json:"-" gorm:"column:password_hash;type:varchar(255);not null"`
	Avatar       string     `json:"avatar" gorm:"type:text;default:'logo.png'"`
	Shop         *ShopInfo  `json:"shop,omitempty" gorm:"type:jsonb"`
	Role         string     `json:"role" gorm:"type:varchar(20);default:'customer';check:role IN ('admin', 'seller', 'customer')"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"-" gorm:"autoUpdateTime"`

	// Relationships
	Addresses []UserAddress `json:"addresses,omitempty" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// ShopBadge returns the badge form of the user's shop with the
// "Không rõ" defaults applied. Safe on a nil user.
func (u *User) ShopBadge() ShopBadge {
	badge := ShopBadge{
		ShopName:    DefaultShopName,
		ShopAvatars: DefaultShopAvatar,
	}
	if u == nil || u.Shop == nil {
		return badge
	}
	if u.Shop.ShopName != "" {
		badge.ShopName = u.Shop.ShopName
	}
	if u.Shop.ShopAvatars != "" {
		badge.ShopAvatars = u.Shop.ShopAvatars
	}
	return badge
}

// ShopInfo JSONB methods
func (s *ShopInfo) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ShopInfo")
	}
	return json.Unmarshal(bytes, s)
}

func (s ShopInfo) Value() (driver.Value, error) {
	return json.Marshal(s)
}
