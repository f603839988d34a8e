package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// PercentDiscount is the blanket percent-off rule on a product.
// It is active only while usedCount < limitQuantity and the current
// time falls inside [startDate, endDate]; a missing bound is unbounded.
type PercentDiscount struct {
	Percent       int        `json:"percent"`
	LimitQuantity int        `json:"limitQuantity"`
	UsedCount     int        `json:"usedCount"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
}

// DiscountCode is a redeemable coupon with its own activation window
// and usage cap, independent of the percent discount.
type DiscountCode struct {
	Code        string     `json:"code"`
	Type        string     `json:"type" example:"percent"` // percent | fixed
	Value       int64      `json:"value"`
	MaxDiscount int64      `json:"maxDiscount"` // percent type only; 0 = uncapped
	UsageLimit  int        `json:"usageLimit"`
	UsedCount   int        `json:"usedCount"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

type DiscountConfig struct {
	PercentDiscount *PercentDiscount `json:"percentDiscount,omitempty"`
	Codes           []DiscountCode   `json:"codes,omitempty"`
}

type ReviewReply struct {
	UserID    string    `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type Review struct {
	UserID      string        `json:"user"`
	ProductID   string        `json:"productID"`
	Rating      int           `json:"rating"` // 1-5
	ReviewMedia []string      `json:"reviewMedia"`
	Comment     string        `json:"comment"`
	Replies     []ReviewReply `json:"replies,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Custom slice types so we can hang Scan/Value on them
type (
	MediaList  []string
	ReviewList []Review
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID              string         `json:"_id" gorm:"type:varchar(40);primaryKey"`
	Media           MediaList      `json:"media" gorm:"type:jsonb;not null;default:'[]'"` // first entry is the cover image
	Name            string         `json:"name" gorm:"not null;index"`
	Price           int64          `json:"price" gorm:"not null;check:price >= 0;index"`
	Category        string         `json:"category" gorm:"not null;index"` // free-text tag string, e.g. "Gạch, Đá & Kính"
	UserID          string         `json:"userId" gorm:"column:user_id;type:uuid;not null;index"`
	Views           int            `json:"views" gorm:"default:0;index:idx_products_views,sort:desc"`
	Warehouse       int            `json:"warehouse" gorm:"not null"`
	Warranty        string         `json:"warranty" gorm:"not null"`
	ManufactureDate datatypes.Date `json:"manufactureDate" gorm:"not null"`
	Manufacturer    string         `json:"manufacturer" gorm:"not null"`
	Description     string         `json:"description" gorm:"not null"`
	Sold            int            `json:"sold" gorm:"default:0;index:idx_products_sold,sort:desc"`
	Discount        DiscountConfig `json:"discount" gorm:"type:jsonb;not null;default:'{}'"`
	Reviews         ReviewList     `json:"reviews" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt       time.Time      `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time      `json:"-" gorm:"autoUpdateTime"`
}

const productIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewProductID builds the legacy-shaped product id: "sp" + unix millis + suffix.
func NewProductID() string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = productIDAlphabet[rand.Intn(len(productIDAlphabet))]
	}
	return fmt.Sprintf("sp%d_%s", time.Now().UnixMilli(), suffix)
}

// BeforeCreate hook - assign the custom string id
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewProductID()
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// ListingColumns is the projection used by every card-view query.
// Reviews are deliberately absent: listings never carry them.
const ListingColumns = "id, media, name, price, category, user_id, views, warehouse, sold, discount, created_at"

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type SaveProductRequest struct {
	ProductName     string   `json:"productName" binding:"required" example:"Gạch lát nền 60x60"`
	Category        string   `json:"category" binding:"required" example:"Gạch, Đá & Kính"`
	Price           int64    `json:"price" binding:"required,min=1" example:"120000"`
	Warehouse       int      `json:"warehouse" binding:"required,min=1" example:"50"`
	Warranty        string   `json:"warranty" binding:"required" example:"12 tháng"`
	ManufactureDate string   `json:"manufactureDate" binding:"required" example:"2024-06-01"`
	Manufacturer    string   `json:"manufacturer" binding:"required" example:"Viglacera"`
	Description     string   `json:"description" binding:"required"`
	Media           []string `json:"media" binding:"required,min=1"` // first URL is the cover image
}

type AddReviewRequest struct {
	ProductID   string   `json:"productId" binding:"required"`
	Rating      int      `json:"rating" binding:"required,min=1,max=5"`
	Comment     string   `json:"comment"`
	ReviewMedia []string `json:"reviewMedia"`
}

type SearchQuery struct {
	Q        string `form:"q"`
	Category string `form:"category"`
	SortBy   string `form:"sortBy"`
}

// ═══════════════════════════════════════════════════════════
// Response Models (card view, recomputed per request)
// ═══════════════════════════════════════════════════════════

type PercentSummary struct {
	Percent int `json:"percent"`
}

type CodeSummary struct {
	Code string `json:"code"`
}

// DiscountSummary is the presentation form of the discount config:
// only what is currently active, and only the winning code's string.
type DiscountSummary struct {
	PercentDiscount *PercentSummary `json:"percentDiscount,omitempty"`
	Codes           *CodeSummary    `json:"codes,omitempty"`
}

type ShopBadge struct {
	ShopName    string `json:"shopName"`
	ShopAvatars string `json:"shopAvatars"`
}

type ShopSummary struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type ShopOwner struct {
	Shop ShopBadge `json:"shop"`
}

// StorefrontProduct is the denormalized, review-stripped card view.
type StorefrontProduct struct {
	ID        string          `json:"_id"`
	Name      string          `json:"name"`
	Price     int64           `json:"price"`
	Category  string          `json:"category"`
	Warehouse int             `json:"warehouse"`
	Sold      int             `json:"sold"`
	SentFrom  string          `json:"sentFrom"`
	Discount  DiscountSummary `json:"discount"`
	Shop      ShopSummary     `json:"shop"`
	Owner     ShopOwner       `json:"owner"`
	Media     string          `json:"media"` // single best-matching URL
}

// ProductDetail is the full detail payload: the raw document plus the
// same enrichment fields the card view carries.
type ProductDetail struct {
	Product
	SentFrom string      `json:"sentFrom"`
	Shop     ShopSummary `json:"shop"`
	Owner    ShopOwner   `json:"owner"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom types)
// ═══════════════════════════════════════════════════════════

// MediaList methods
func (m *MediaList) Scan(value interface{}) error {
	if value == nil {
		*m = make(MediaList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan MediaList")
	}
	return json.Unmarshal(bytes, m)
}

func (m MediaList) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(m)
}

// ReviewList methods
func (r *ReviewList) Scan(value interface{}) error {
	if value == nil {
		*r = make(ReviewList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ReviewList")
	}
	return json.Unmarshal(bytes, r)
}

func (r ReviewList) Value() (driver.Value, error) {
	if r == nil {
		return json.Marshal([]Review{})
	}
	return json.Marshal(r)
}

// DiscountConfig methods
func (d *DiscountConfig) Scan(value interface{}) error {
	if value == nil {
		*d = DiscountConfig{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan DiscountConfig")
	}
	return json.Unmarshal(bytes, d)
}

func (d DiscountConfig) Value() (driver.Value, error) {
	return json.Marshal(d)
}
