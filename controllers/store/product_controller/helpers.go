package product_controller

import (
	"log"
	"time"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/config"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/services"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

const (
	listingLimit = 24 // general listings
	searchLimit  = 50 // search results
)

// buildSortClause maps the sortBy query value to an ORDER BY clause.
// Unrecognized or absent values default to newest-first.
func buildSortClause(sortBy string) string {
	switch sortBy {
	case "price-asc":
		return "price ASC"
	case "price-desc":
		return "price DESC"
	case "popularity":
		return "sold DESC"
	case "newest":
		return "created_at DESC"
	case "oldest":
		return "created_at ASC"
	default:
		return "created_at DESC"
	}
}

// fetchCards runs a card-view query (reviews never selected) and
// enriches the rows into storefront cards, preserving query order.
func fetchCards(build func(tx *gorm.DB) *gorm.DB) ([]models.StorefrontProduct, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var products []models.Product
	tx := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Select(models.ListingColumns)
	if err := build(tx).Find(&products).Error; err != nil {
		return nil, err
	}

	return services.BuildCards(ctx, products)
}

// incrementProductViews bumps the view counter for a product.
// Fire-and-forget: counts are best-effort under concurrent readers.
func incrementProductViews(productID string) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	_, err := config.DB.Exec(ctx,
		"UPDATE products SET views = COALESCE(views, 0) + 1 WHERE id = $1",
		productID,
	)
	if err != nil {
		log.Printf("❌ Failed to increment views for %s: %v", productID, err)
	}
}

// logSearchKeyword upserts the per-keyword search counter.
func logSearchKeyword(keyword string) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	entry := models.SearchLog{Keyword: keyword, SearchCount: 1, LastSearched: time.Now()}
	err := config.Gorm.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "keyword"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"search_count":  gorm.Expr("search_logs.search_count + 1"),
			"last_searched": time.Now(),
		}),
	}).Create(&entry).Error
	if err != nil {
		log.Printf("❌ Failed to log search keyword %q: %v", keyword, err)
	}
}
