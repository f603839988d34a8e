package product_controller

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/config"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// hexIDPattern matches the 24-char hex ids of the legacy catalog.
var hexIDPattern = regexp.MustCompile(`^[a-f0-9]{24}$`)

// SearchProducts godoc
// @Summary Search products
// @Description Multi-criteria product search. "sp" followed by a 24-char hex id is a direct id lookup; anything else filters by name substring and exact category, sorted by sortBy, capped at 50.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search text, or sp<id> for a direct lookup"
// @Param category query string false "Exact category filter"
// @Param sortBy query string false "Sort order" Enums(price-asc, price-desc, popularity, newest, oldest) default(newest)
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Direct id lookup missed"
// @Failure 500 {object} models.ApiResponse
// @Router /products/search [get]
func SearchProducts(c *gin.Context) {
	var query models.SearchQuery
	_ = c.ShouldBindQuery(&query)
	q := strings.TrimSpace(query.Q)

	if q != "" {
		go logSearchKeyword(q)
	}

	// Direct id shortcut, kept for old storefront links. A malformed
	// suffix falls through to the normal name search.
	if strings.HasPrefix(strings.ToLower(q), "sp") {
		if id := strings.ToLower(q[2:]); hexIDPattern.MatchString(id) {
			searchByID(c, id)
			return
		}
	}

	cards, err := fetchCards(func(tx *gorm.DB) *gorm.DB {
		if q != "" {
			tx = tx.Where("name ILIKE ?", "%"+q+"%")
		}
		if query.Category != "" {
			tx = tx.Where("category = ?", query.Category)
		}
		return tx.Order(buildSortClause(query.SortBy)).Limit(searchLimit)
	})
	if err != nil {
		log.Printf("❌ Search failed for %q: %v", q, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Search failed"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Search results fetched successfully", cards))
}

// searchByID answers the shortcut path with a single-element result.
// A miss here is a 404, distinct from an empty search result set.
func searchByID(c *gin.Context, id string) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	err := config.Gorm.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		log.Printf("❌ Direct id lookup failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Search failed"))
		return
	}

	card, err := services.BuildCard(ctx, &product)
	if err != nil {
		log.Printf("❌ Failed to enrich product %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Search failed"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Search results fetched successfully",
		[]models.StorefrontProduct{*card}))
}
