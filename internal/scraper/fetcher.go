package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/dealhound/ebay-deal-finder/internal/config"
)

// FetchError classifies a failed page fetch: either the transport failed or
// the marketplace answered with a non-success status. Callers log it, skip
// the page, and carry on with the rest of the run.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher retrieves search result pages with a browser identity. eBay serves
// bot-flagged clients an empty shell, so the user agent and language headers
// go out on every request.
type Fetcher struct {
	client         *http.Client
	userAgent      string
	acceptLanguage string
	logger         *log.Entry
}

func NewFetcher(cfg *config.Config, logger *log.Entry) *Fetcher {
	return &Fetcher{
		client:         &http.Client{Timeout: cfg.FetchTimeout},
		userAgent:      cfg.UserAgent,
		acceptLanguage: cfg.AcceptLanguage,
		logger:         logger.WithField("component", "fetcher"),
	}
}

// Fetch issues a single GET for the given URL and returns the page body.
// Any failure comes back as a *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	f.logger.WithField("url", pageURL).Debug("fetching page")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", f.acceptLanguage)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusBadRequest {
		return "", &FetchError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}
	return string(body), nil
}
