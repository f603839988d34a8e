package services

import (
	"context"
	"fmt"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/config"
)

// NextShopName hands out the next unique "ShopN" name from a database
// sequence, so concurrent shop creations never race on a scan-based
// uniqueness check.
func NextShopName(ctx context.Context) (string, error) {
	var n int64
	if err := config.DB.QueryRow(ctx, "SELECT nextval('shop_name_seq')").Scan(&n); err != nil {
		return "", fmt.Errorf("next shop name: %w", err)
	}
	return fmt.Sprintf("Shop%d", n), nil
}
