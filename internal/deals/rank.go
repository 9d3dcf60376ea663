package deals

import (
	"sort"

	"github.com/dealhound/ebay-deal-finder/internal/models"
)

// Rank sorts listings in place by descending deal score, breaking ties by
// ascending price so the cheaper listing wins among equals.
func Rank(listings []models.ScoredListing) {
	sort.SliceStable(listings, func(i, j int) bool {
		if listings[i].DealScore != listings[j].DealScore {
			return listings[i].DealScore > listings[j].DealScore
		}
		return listings[i].Price < listings[j].Price
	})
}

// TopDeals selects the listings worth reporting from an already ranked slice:
// everything scoring at least minScore, or the first fallbackCount listings
// when nothing clears the bar.
func TopDeals(ranked []models.ScoredListing, minScore, fallbackCount int) []models.ScoredListing {
	var top []models.ScoredListing
	for _, l := range ranked {
		if l.DealScore >= minScore {
			top = append(top, l)
		}
	}

	if len(top) == 0 {
		if fallbackCount > len(ranked) {
			fallbackCount = len(ranked)
		}
		top = ranked[:fallbackCount]
	}
	return top
}
