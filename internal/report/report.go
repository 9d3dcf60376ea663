package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dealhound/ebay-deal-finder/internal/config"
	"github.com/dealhound/ebay-deal-finder/internal/models"
)

const ruleWidth = 70

// Reporter renders the plain-text deal report to a sink, stdout in the
// reference setup.
type Reporter struct {
	w   io.Writer
	cfg *config.Config
}

func New(w io.Writer, cfg *config.Config) *Reporter {
	return &Reporter{w: w, cfg: cfg}
}

// RenderHeader prints the run banner before scraping begins.
func (r *Reporter) RenderHeader() {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w, "  eBay Surround Sound Speaker Deal Finder")
	fmt.Fprintln(r.w, rule)
	fmt.Fprintf(r.w, "  Price range: $%d - $%d | Filter: Buy It Now\n\n", r.cfg.MinPrice, r.cfg.MaxPrice)
}

// Render prints the top deals followed by the run totals. top must already be
// ranked; all is the full deduplicated set and feeds the totals only. The
// displayed rows are capped and title/link are truncated for display, but the
// underlying listings are untouched.
func (r *Reporter) Render(all, top []models.ScoredListing) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(r.w, "\n%s\n", rule)
	fmt.Fprintf(r.w, "  TOP DEALS FOUND: %d (out of %d total)\n", len(top), len(all))
	fmt.Fprintf(r.w, "%s\n\n", rule)

	shown := top
	if len(shown) > r.cfg.MaxReportRows {
		shown = shown[:r.cfg.MaxReportRows]
	}

	for i, item := range shown {
		brandTag := ""
		if item.QualityBrand {
			brandTag = " [QUALITY BRAND]"
		}
		fmt.Fprintf(r.w, "  #%d (Score: %d)%s\n", i+1, item.DealScore, brandTag)
		fmt.Fprintf(r.w, "  Title:     %s\n", truncate(item.Title, r.cfg.TitleWidth))
		fmt.Fprintf(r.w, "  Price:     $%.2f\n", item.Price)
		fmt.Fprintf(r.w, "  Shipping:  %s\n", item.Shipping)
		fmt.Fprintf(r.w, "  Condition: %s\n", item.Condition)
		fmt.Fprintf(r.w, "  Link:      %s\n\n", truncate(item.Link, r.cfg.LinkWidth))
	}

	fmt.Fprintf(r.w, "  Total listings scraped: %d\n", len(all))
	fmt.Fprintf(r.w, "  Showing top %d deals\n", len(shown))
	fmt.Fprintln(r.w, rule)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
