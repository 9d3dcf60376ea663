package deals

import (
	"github.com/dealhound/ebay-deal-finder/internal/models"
)

// Dedupe collapses listings that resolve to the same canonical detail link,
// keeping the first occurrence. The relative order of survivors is preserved.
func Dedupe(listings []models.ScoredListing) []models.ScoredListing {
	seen := make(map[string]struct{}, len(listings))
	unique := make([]models.ScoredListing, 0, len(listings))

	for _, l := range listings {
		key := l.CanonicalLink()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, l)
	}
	return unique
}
