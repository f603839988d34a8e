package services

import (
	"testing"
	"time"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestResolveDiscountPercentActive(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	product := &models.Product{
		Price: 200000,
		Discount: models.DiscountConfig{
			PercentDiscount: &models.PercentDiscount{
				Percent:       10,
				LimitQuantity: 100,
				UsedCount:     40,
				StartDate:     timePtr(now.AddDate(0, 0, -1)),
				EndDate:       timePtr(now.AddDate(0, 0, 1)),
			},
		},
	}

	summary := ResolveDiscount(product, now)

	assert.NotNil(t, summary.PercentDiscount)
	assert.Equal(t, 10, summary.PercentDiscount.Percent)
	assert.Nil(t, summary.Codes)
}

func TestResolveDiscountPercentExhausted(t *testing.T) {
	now := time.Now()
	product := &models.Product{
		Price: 200000,
		Discount: models.DiscountConfig{
			PercentDiscount: &models.PercentDiscount{
				Percent:       10,
				LimitQuantity: 100,
				UsedCount:     100,
			},
		},
	}

	summary := ResolveDiscount(product, now)

	assert.Nil(t, summary.PercentDiscount, "exhausted percent rule must be omitted")
}

func TestResolveDiscountPercentWindow(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	product := &models.Product{
		Price: 200000,
		Discount: models.DiscountConfig{
			PercentDiscount: &models.PercentDiscount{
				Percent:       15,
				LimitQuantity: 50,
				StartDate:     &start,
			},
		},
	}

	before := ResolveDiscount(product, start.AddDate(0, 0, -1))
	assert.Nil(t, before.PercentDiscount, "not yet started")

	after := ResolveDiscount(product, start.AddDate(0, 0, 1))
	assert.NotNil(t, after.PercentDiscount, "active once the window opens")
}

func TestResolveDiscountBestCodeWins(t *testing.T) {
	// 20% of 200000 is 40000, capped down to 30000; the fixed 50000
	// code is worth more and must win.
	product := &models.Product{
		Price: 200000,
		Discount: models.DiscountConfig{
			Codes: []models.DiscountCode{
				{Code: "GIAM20", Type: "percent", Value: 20, MaxDiscount: 30000, UsageLimit: 10},
				{Code: "GIAM50K", Type: "fixed", Value: 50000, UsageLimit: 10},
			},
		},
	}

	summary := ResolveDiscount(product, time.Now())

	assert.NotNil(t, summary.Codes)
	assert.Equal(t, "GIAM50K", summary.Codes.Code)
}

func TestResolveDiscountTieGoesToFirst(t *testing.T) {
	product := &models.Product{
		Price: 100000,
		Discount: models.DiscountConfig{
			Codes: []models.DiscountCode{
				{Code: "FIRST", Type: "fixed", Value: 20000, UsageLimit: 10},
				{Code: "SECOND", Type: "fixed", Value: 20000, UsageLimit: 10},
			},
		},
	}

	summary := ResolveDiscount(product, time.Now())

	assert.NotNil(t, summary.Codes)
	assert.Equal(t, "FIRST", summary.Codes.Code)
}

func TestResolveDiscountSkipsInactiveCodes(t *testing.T) {
	now := time.Now()
	product := &models.Product{
		Price: 100000,
		Discount: models.DiscountConfig{
			Codes: []models.DiscountCode{
				{Code: "USEDUP", Type: "fixed", Value: 90000, UsageLimit: 5, UsedCount: 5},
				{Code: "EXPIRED", Type: "fixed", Value: 80000, UsageLimit: 5, ExpiresAt: timePtr(now.AddDate(0, 0, -1))},
				{Code: "LIVE", Type: "fixed", Value: 10000, UsageLimit: 5},
			},
		},
	}

	summary := ResolveDiscount(product, now)

	assert.NotNil(t, summary.Codes)
	assert.Equal(t, "LIVE", summary.Codes.Code)
}

func TestResolveDiscountEmptyConfig(t *testing.T) {
	summary := ResolveDiscount(&models.Product{Price: 100000}, time.Now())

	assert.Nil(t, summary.PercentDiscount)
	assert.Nil(t, summary.Codes)
}

func TestCouponAmount(t *testing.T) {
	tests := []struct {
		name  string
		code  models.DiscountCode
		price int64
		want  float64
	}{
		{"percent uncapped", models.DiscountCode{Type: "percent", Value: 20}, 200000, 40000},
		{"percent capped", models.DiscountCode{Type: "percent", Value: 20, MaxDiscount: 30000}, 200000, 30000},
		{"percent cap above raw", models.DiscountCode{Type: "percent", Value: 10, MaxDiscount: 30000}, 200000, 20000},
		{"fixed", models.DiscountCode{Type: "fixed", Value: 50000}, 200000, 50000},
		{"unknown type", models.DiscountCode{Type: "bogus", Value: 50000}, 200000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CouponAmount(&tt.code, tt.price))
		})
	}
}
