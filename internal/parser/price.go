package parser

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoPrice reports price text without any recognizable dollar amount.
// Listings that trip it are dropped upstream rather than retained priceless.
var ErrNoPrice = errors.New("no price found")

var pricePattern = regexp.MustCompile(`\$[0-9,]+\.?[0-9]*`)

// ParsePrice extracts the numeric value from free-form price text such as
// "$149.99" or "$80.00 to $120.00". When the text expresses a range, the
// first amount is the lower bound and that is the value returned.
func ParsePrice(text string) (float64, error) {
	match := pricePattern.FindString(text)
	if match == "" {
		return 0, ErrNoPrice
	}

	cleaned := strings.NewReplacer("$", "", ",", "").Replace(match)
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrNoPrice
	}
	return price, nil
}
