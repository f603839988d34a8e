package services

import (
	"context"
	"net/url"
	"strings"
	"time"

	seller_cache "github.com/ChoViet-Ecommerce/choviet-marketplace-backend/cache"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"golang.org/x/sync/errgroup"
)

// EnrichWorkers caps the per-product enrichment fan-out so a large
// result set cannot open unbounded concurrent store lookups.
const EnrichWorkers = 8

// BuildCards turns raw catalog records into the client-facing card
// views. Enrichment lookups run concurrently but the output keeps the
// input order, and the first failed lookup fails the whole batch.
func BuildCards(ctx context.Context, products []models.Product) ([]models.StorefrontProduct, error) {
	cards := make([]models.StorefrontProduct, len(products))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(EnrichWorkers)
	for i := range products {
		i := i
		g.Go(func() error {
			card, err := BuildCard(gctx, &products[i])
			if err != nil {
				return err
			}
			cards[i] = *card
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return cards, nil
}

// BuildCard assembles the denormalized card view for one product.
func BuildCard(ctx context.Context, p *models.Product) (*models.StorefrontProduct, error) {
	badge, sentFrom, err := SellerContext(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	return &models.StorefrontProduct{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Category:  p.Category,
		Warehouse: p.Warehouse,
		Sold:      p.Sold,
		SentFrom:  sentFrom,
		Discount:  ResolveDiscount(p, time.Now()),
		Shop:      models.ShopSummary{Name: badge.ShopName, Avatar: badge.ShopAvatars},
		Owner:     models.ShopOwner{Shop: badge},
		Media:     PickCardMedia(p.Media, p.Name),
	}, nil
}

// SellerContext resolves a seller's shop badge and shipping-origin
// province, memoized per seller for a short TTL.
func SellerContext(ctx context.Context, userID string) (models.ShopBadge, string, error) {
	if badge, sentFrom, ok := seller_cache.Get(userID); ok {
		return badge, sentFrom, nil
	}

	badge, err := FetchSellerShop(ctx, userID)
	if err != nil {
		return models.ShopBadge{}, "", err
	}
	shipping, err := ResolveShippingAddress(ctx, userID)
	if err != nil {
		return models.ShopBadge{}, "", err
	}

	sentFrom := ExtractProvince(shipping)
	seller_cache.Set(userID, badge, sentFrom)
	return badge, sentFrom, nil
}

// PickCardMedia chooses the representative image for a card: the first
// URL whose decoded text contains the product name, else the first
// entry, else empty.
func PickCardMedia(media models.MediaList, name string) string {
	for _, raw := range media {
		decoded, err := url.PathUnescape(raw)
		if err != nil {
			decoded = raw
		}
		if strings.Contains(decoded, name) {
			return raw
		}
	}
	if len(media) > 0 {
		return media[0]
	}
	return ""
}
