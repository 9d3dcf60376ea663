package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dealhound/ebay-deal-finder/internal/models"
)

// eBay renders a generic "Shop on eBay" card at the top of every results
// list. It looks like a listing but never is one.
const placeholderTitle = "shop on ebay"

// ExtractListings parses one results page into raw listings, in page order.
// Cards missing a title, price, or link are malformed placeholders and are
// dropped; missing shipping or condition text is normal and falls back to
// the "N/A" sentinel.
func ExtractListings(body string) ([]models.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	var listings []models.Listing
	doc.Find("li.s-item").Each(func(_ int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find(".s-item__title").First().Text())
		priceText := strings.TrimSpace(item.Find(".s-item__price").First().Text())
		link, _ := item.Find("a.s-item__link").First().Attr("href")

		if title == "" || priceText == "" || link == "" {
			return
		}
		if strings.HasPrefix(strings.ToLower(title), placeholderTitle) {
			return
		}

		listings = append(listings, models.Listing{
			Title:     title,
			PriceText: priceText,
			Shipping:  textOrNA(item.Find(".s-item__shipping, .s-item__freeXDays").First()),
			Condition: textOrNA(item.Find(".SECONDARY_INFO").First()),
			Link:      link,
		})
	})

	return listings, nil
}

func textOrNA(sel *goquery.Selection) string {
	text := strings.TrimSpace(sel.Text())
	if text == "" {
		return models.NotAvailable
	}
	return text
}
