package scraper

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/dealhound/ebay-deal-finder/internal/config"
	"github.com/dealhound/ebay-deal-finder/internal/deals"
	"github.com/dealhound/ebay-deal-finder/internal/models"
	"github.com/dealhound/ebay-deal-finder/internal/parser"
	"github.com/dealhound/ebay-deal-finder/internal/ratelimit"
)

// Service walks the configured queries page by page and turns each results
// page into scored listings. Pages are fetched strictly in (query, page)
// order with the limiter pacing every request.
type Service struct {
	cfg     *config.Config
	fetcher *Fetcher
	limiter ratelimit.Limiter
	scorer  *deals.Scorer
	logger  *log.Entry
}

func NewService(cfg *config.Config, fetcher *Fetcher, limiter ratelimit.Limiter, logger *log.Entry) *Service {
	return &Service{
		cfg:     cfg,
		fetcher: fetcher,
		limiter: limiter,
		scorer:  deals.NewScorer(cfg.QualityBrands),
		logger:  logger.WithField("component", "scraper"),
	}
}

// Run fetches every (query, page) pair in order and accumulates scored
// listings. A failed page is logged and skipped; the crawl never aborts
// short of context cancellation.
func (s *Service) Run(ctx context.Context) []models.ScoredListing {
	var all []models.ScoredListing

	for _, query := range s.cfg.Queries {
		for page := 1; page <= s.cfg.MaxPages; page++ {
			if err := s.limiter.Wait(ctx); err != nil {
				s.logger.WithError(err).Warn("crawl interrupted")
				return all
			}
			all = append(all, s.scrapePage(ctx, query, page)...)
		}
	}
	return all
}

func (s *Service) scrapePage(ctx context.Context, query string, page int) []models.ScoredListing {
	logger := s.logger.WithFields(log.Fields{"query": query, "page": page})
	logger.Info("fetching results page")

	body, err := s.fetcher.Fetch(ctx, SearchURL(s.cfg, query, page))
	if err != nil {
		logger.WithError(err).Warn("page fetch failed, skipping")
		return nil
	}

	raw, err := ExtractListings(body)
	if err != nil {
		logger.WithError(err).Warn("page parse failed, skipping")
		return nil
	}

	scored := make([]models.ScoredListing, 0, len(raw))
	for _, l := range raw {
		price, err := parser.ParsePrice(l.PriceText)
		if err != nil {
			// Expected noise in scraped markup, not an error.
			continue
		}

		brandMatch, score := s.scorer.Score(l, price)
		scored = append(scored, models.ScoredListing{
			Listing:      l,
			Price:        price,
			QualityBrand: brandMatch,
			DealScore:    score,
		})
	}

	logger.WithField("count", len(scored)).Info("extracted listings")
	return scored
}
