package services

import (
	"time"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
)

// ResolveDiscount computes the presentation summary of a product's
// discount config at a given instant. It is read-only: redemption
// bookkeeping (usedCount) is handled elsewhere, at purchase time.
//
// The percent branch is included only while the rule is active. Among
// the active coupon codes, the one with the highest computed amount
// wins and only its code string is exposed; the amount is used for
// ranking, never returned.
func ResolveDiscount(p *models.Product, now time.Time) models.DiscountSummary {
	var summary models.DiscountSummary

	pd := p.Discount.PercentDiscount
	if pd != nil &&
		pd.Percent > 0 &&
		pd.UsedCount < pd.LimitQuantity &&
		withinWindow(now, pd.StartDate, pd.EndDate) {
		summary.PercentDiscount = &models.PercentSummary{Percent: pd.Percent}
	}

	var best *models.DiscountCode
	var bestAmount float64
	for i := range p.Discount.Codes {
		code := &p.Discount.Codes[i]
		if code.UsedCount >= code.UsageLimit {
			continue
		}
		if !withinWindow(now, code.StartDate, code.ExpiresAt) {
			continue
		}
		// strict greater-than: ties go to the earlier list entry
		if amount := CouponAmount(code, p.Price); best == nil || amount > bestAmount {
			best = code
			bestAmount = amount
		}
	}
	if best != nil {
		summary.Codes = &models.CodeSummary{Code: best.Code}
	}

	return summary
}

// CouponAmount is the monetary value a code would take off the given
// price. For percent codes a zero maxDiscount means no cap.
func CouponAmount(code *models.DiscountCode, price int64) float64 {
	switch code.Type {
	case "percent":
		raw := float64(code.Value) / 100 * float64(price)
		if code.MaxDiscount > 0 && float64(code.MaxDiscount) < raw {
			return float64(code.MaxDiscount)
		}
		return raw
	case "fixed":
		return float64(code.Value)
	}
	return 0
}

// withinWindow reports whether now falls inside [start, end]; a nil
// bound is unbounded on that side.
func withinWindow(now time.Time, start, end *time.Time) bool {
	if start != nil && now.Before(*start) {
		return false
	}
	if end != nil && now.After(*end) {
		return false
	}
	return true
}
