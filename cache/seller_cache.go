package seller_cache

import (
	"sync"
	"time"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
)

const TTL = 5 * time.Minute

// ── Seller enrichment cache ─────────────────────────────────────────────────
// One seller often owns many products on the same listing page; memoizing
// the (shop badge, shipping origin) pair per seller spares the duplicate
// lookups. Invalidated whenever the seller's shop or addresses change.

type entry struct {
	badge     models.ShopBadge
	sentFrom  string
	fetchedAt time.Time
}

var (
	mu      sync.RWMutex
	sellers = make(map[string]entry)
)

func Get(userID string) (badge models.ShopBadge, sentFrom string, ok bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, found := sellers[userID]
	if !found || time.Since(e.fetchedAt) >= TTL {
		return models.ShopBadge{}, "", false
	}
	return e.badge, e.sentFrom, true
}

func Set(userID string, badge models.ShopBadge, sentFrom string) {
	mu.Lock()
	defer mu.Unlock()
	sellers[userID] = entry{badge: badge, sentFrom: sentFrom, fetchedAt: time.Now()}
}

// Invalidate drops one seller (call on any shop or address mutation).
func Invalidate(userID string) {
	mu.Lock()
	defer mu.Unlock()
	delete(sellers, userID)
}

// Reset drops everything. Test helper.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	sellers = make(map[string]entry)
}
