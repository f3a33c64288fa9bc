package models

import (
	"fmt"
	"strings"
)

// Price is one currency-keyed pricing entry on a course.
//
// A course can carry several entries per currency over time (seasonal
// repricing keeps the old rows around with IsActive=false), but at most
// one entry per currency may be active at any moment.
type Price struct {
	Currency          string  `bson:"currency" json:"currency"` // ISO 4217, upper-case
	Individual        float64 `bson:"individual" json:"individual"`
	Batch             float64 `bson:"batch,omitempty" json:"batch,omitempty"`
	MinBatchSize      int     `bson:"min_batch_size,omitempty" json:"min_batch_size,omitempty"`
	MaxBatchSize      int     `bson:"max_batch_size,omitempty" json:"max_batch_size,omitempty"`
	EarlyBirdDiscount float64 `bson:"early_bird_discount,omitempty" json:"early_bird_discount,omitempty"`
	GroupDiscount     float64 `bson:"group_discount,omitempty" json:"group_discount,omitempty"`
	IsActive          bool    `bson:"is_active" json:"is_active"`
}

// ValidatePrices checks structural pricing invariants:
//   - currency present and 3 letters
//   - non-negative amounts and discounts within 0..100
//   - min_batch_size <= max_batch_size when both set
//   - at most one active entry per currency
func ValidatePrices(prices []Price) error {
	activeByCurrency := make(map[string]int, len(prices))
	for i, p := range prices {
		cur := strings.ToUpper(strings.TrimSpace(p.Currency))
		if len(cur) != 3 {
			return fmt.Errorf("prices[%d]: currency must be a 3-letter code, got %q", i, p.Currency)
		}
		if p.Individual < 0 || p.Batch < 0 {
			return fmt.Errorf("prices[%d]: amounts must be non-negative", i)
		}
		if p.EarlyBirdDiscount < 0 || p.EarlyBirdDiscount > 100 {
			return fmt.Errorf("prices[%d]: early_bird_discount must be within 0..100", i)
		}
		if p.GroupDiscount < 0 || p.GroupDiscount > 100 {
			return fmt.Errorf("prices[%d]: group_discount must be within 0..100", i)
		}
		if p.MinBatchSize > 0 && p.MaxBatchSize > 0 && p.MinBatchSize > p.MaxBatchSize {
			return fmt.Errorf("prices[%d]: min_batch_size exceeds max_batch_size", i)
		}
		if p.IsActive {
			activeByCurrency[cur]++
			if activeByCurrency[cur] > 1 {
				return fmt.Errorf("prices[%d]: more than one active price for currency %s", i, cur)
			}
		}
	}
	return nil
}

// NormalizePrices upper-cases currencies in place.
func NormalizePrices(prices []Price) {
	for i := range prices {
		prices[i].Currency = strings.ToUpper(strings.TrimSpace(prices[i].Currency))
	}
}
