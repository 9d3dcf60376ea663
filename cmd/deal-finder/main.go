package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/dealhound/ebay-deal-finder/internal/config"
	"github.com/dealhound/ebay-deal-finder/internal/deals"
	"github.com/dealhound/ebay-deal-finder/internal/ratelimit"
	"github.com/dealhound/ebay-deal-finder/internal/report"
	"github.com/dealhound/ebay-deal-finder/internal/scraper"
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	// Logs go to stderr so the report on stdout stays clean.
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)
}

func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := log.WithField("run_id", uuid.NewString())
	logger.Info("deal finder starting")

	fetcher := scraper.NewFetcher(cfg, logger)
	limiter := ratelimit.NewFixed(cfg.RequestDelay)
	svc := scraper.NewService(cfg, fetcher, limiter, logger)

	rep := report.New(os.Stdout, cfg)
	rep.RenderHeader()

	all := svc.Run(context.Background())

	unique := deals.Dedupe(all)
	deals.Rank(unique)
	top := deals.TopDeals(unique, cfg.MinDealScore, cfg.FallbackCount)

	rep.Render(unique, top)

	logger.WithFields(log.Fields{
		"scraped": len(all),
		"unique":  len(unique),
		"top":     len(top),
	}).Info("deal finder finished")
}
