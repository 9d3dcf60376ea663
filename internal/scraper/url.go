package scraper

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/dealhound/ebay-deal-finder/internal/config"
)

// SearchURL builds the search results URL for one page of a query. The fixed
// filters restrict results to Buy It Now listings in the configured price
// band and condition set, sorted newest first.
func SearchURL(cfg *config.Config, query string, page int) string {
	values := url.Values{}
	values.Set("_nkw", query)
	values.Set("_sacat", "0")
	values.Set("LH_BIN", "1")
	values.Set("_sop", "15")
	values.Set("_pgn", strconv.Itoa(page))
	values.Set("_udlo", strconv.Itoa(cfg.MinPrice))
	values.Set("_udhi", strconv.Itoa(cfg.MaxPrice))
	values.Set("rt", "nc")
	values.Set("LH_ItemCondition", strings.Join(cfg.ConditionCodes, "|"))

	return cfg.SearchBaseURL + "?" + values.Encode()
}
