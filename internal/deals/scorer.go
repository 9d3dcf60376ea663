package deals

import (
	"strings"

	"github.com/dealhound/ebay-deal-finder/internal/models"
)

// Score bonuses and price tier boundaries. Together they bound the deal
// score to [0, 8].
const (
	brandBonus     = 3
	shippingBonus  = 2
	lowTierBonus   = 2
	midTierBonus   = 1
	conditionBonus = 1

	lowTierLimit = 200
	midTierLimit = 350
)

// Scorer rates listings against a fixed brand allow-list. Scoring is a pure
// function of the listing fields and price, so a listing scores identically
// no matter which query or page surfaced it.
type Scorer struct {
	brands []string
}

func NewScorer(brands []string) *Scorer {
	lowered := make([]string, len(brands))
	for i, b := range brands {
		lowered[i] = strings.ToLower(b)
	}
	return &Scorer{brands: lowered}
}

// Score returns whether the listing's title matches a known quality brand and
// the additive deal score: +3 brand, +2 free shipping, +2 under $200 or +1
// under $350, +1 new or open box condition.
func (s *Scorer) Score(l models.Listing, price float64) (brandMatch bool, score int) {
	brandMatch = s.isQualityBrand(l.Title)
	if brandMatch {
		score += brandBonus
	}

	if strings.Contains(strings.ToLower(l.Shipping), "free") {
		score += shippingBonus
	}

	switch {
	case price < lowTierLimit:
		score += lowTierBonus
	case price < midTierLimit:
		score += midTierBonus
	}

	condition := strings.ToLower(l.Condition)
	if strings.Contains(condition, "new") || strings.Contains(condition, "open box") {
		score += conditionBonus
	}

	return brandMatch, score
}

func (s *Scorer) isQualityBrand(title string) bool {
	lower := strings.ToLower(title)
	for _, brand := range s.brands {
		if strings.Contains(lower, brand) {
			return true
		}
	}
	return false
}
