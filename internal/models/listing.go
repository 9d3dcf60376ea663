package models

import (
	"strings"
)

// NotAvailable marks a field the results page did not render for a listing.
const NotAvailable = "N/A"

// Listing is a single raw entry extracted from a search results page.
// Shipping and Condition carry NotAvailable when the page omits them.
type Listing struct {
	Title     string
	PriceText string
	Shipping  string
	Condition string
	Link      string
}

// ScoredListing is a Listing with its parsed price and deal score attached.
// It is never mutated after creation.
type ScoredListing struct {
	Listing
	Price        float64
	QualityBrand bool
	DealScore    int
}

// CanonicalLink returns the detail link with any query string removed.
// Overlapping searches surface the same item under different tracking
// parameters, so the bare URL identifies the underlying listing.
func (s ScoredListing) CanonicalLink() string {
	if i := strings.Index(s.Link, "?"); i >= 0 {
		return s.Link[:i]
	}
	return s.Link
}
