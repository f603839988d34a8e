package services

import (
	"context"
	"fmt"
	"testing"

	seller_cache "github.com/ChoViet-Ecommerce/choviet-marketplace-backend/cache"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/config"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestBuildCardsPreservesOrder(t *testing.T) {
	seller_cache.Reset()
	t.Cleanup(seller_cache.Reset)

	// Every seller is pre-cached, so enrichment never touches the store
	// and the concurrent fan-out is the only thing under test.
	products := make([]models.Product, 30)
	for i := range products {
		sellerID := fmt.Sprintf("seller-%02d", i)
		seller_cache.Set(sellerID, models.ShopBadge{
			ShopName:    fmt.Sprintf("Shop%d", i),
			ShopAvatars: models.DefaultShopAvatar,
		}, "Hà Nội")
		products[i] = models.Product{
			ID:     fmt.Sprintf("sp%013d_%04d", i, i),
			Name:   fmt.Sprintf("Sản phẩm %d", i),
			Price:  int64(1000 * (i + 1)),
			UserID: sellerID,
			Media:  models.MediaList{fmt.Sprintf("/uploads/p%d.webp", i)},
		}
	}

	cards, err := BuildCards(context.Background(), products)
	require.NoError(t, err)
	require.Len(t, cards, len(products))

	for i := range cards {
		assert.Equal(t, products[i].ID, cards[i].ID, "card %d out of order", i)
		assert.Equal(t, fmt.Sprintf("Shop%d", i), cards[i].Shop.Name)
		assert.Equal(t, "Hà Nội", cards[i].SentFrom)
	}
}

func TestBuildCardsFailsBatchOnLookupError(t *testing.T) {
	seller_cache.Reset()
	t.Cleanup(seller_cache.Reset)

	// A lazily-opened handle aimed at a closed port: the uncached
	// seller's lookup fails with a connection error at query time, no
	// live database required.
	prev := config.Gorm
	t.Cleanup(func() { config.Gorm = prev })

	dsn := "host=127.0.0.1 port=1 user=nobody dbname=nowhere sslmode=disable connect_timeout=1"
	broken, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	config.Gorm = broken

	seller_cache.Set("cached-seller", models.ShopBadge{
		ShopName:    "Shop1",
		ShopAvatars: models.DefaultShopAvatar,
	}, "Hà Nội")

	products := []models.Product{
		{ID: "sp0000000000001_aaaa", Name: "A", UserID: "cached-seller"},
		{ID: "sp0000000000002_bbbb", Name: "B", UserID: "uncached-seller"},
	}

	cards, err := BuildCards(context.Background(), products)
	assert.Error(t, err, "one failed lookup must fail the whole batch")
	assert.Nil(t, cards)
}

func TestPickCardMedia(t *testing.T) {
	t.Run("prefers URL matching the product name", func(t *testing.T) {
		media := models.MediaList{
			"/uploads/product/banner.webp",
			"/uploads/product/G%E1%BA%A1ch%20men-cover.webp", // "Gạch men" percent-encoded
		}
		got := PickCardMedia(media, "Gạch men")
		assert.Equal(t, "/uploads/product/G%E1%BA%A1ch%20men-cover.webp", got)
	})

	t.Run("falls back to the first entry", func(t *testing.T) {
		media := models.MediaList{"/uploads/a.webp", "/uploads/b.webp"}
		assert.Equal(t, "/uploads/a.webp", PickCardMedia(media, "Xi măng"))
	})

	t.Run("malformed escape is matched raw", func(t *testing.T) {
		media := models.MediaList{"/uploads/other.webp", "/uploads/%zz-Gạch.webp"}
		assert.Equal(t, "/uploads/%zz-Gạch.webp", PickCardMedia(media, "Gạch"))
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, "", PickCardMedia(nil, "Gạch"))
	})
}
