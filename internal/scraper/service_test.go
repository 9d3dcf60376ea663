package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealhound/ebay-deal-finder/internal/config"
	"github.com/dealhound/ebay-deal-finder/internal/ratelimit"
)

const servicePage = `<ul>
	<li class="s-item">
		<a class="s-item__link" href="https://www.ebay.com/itm/123?hash=abc"></a>
		<div class="s-item__title">Bose Soundbar 700 Home Theater</div>
		<span class="s-item__price">$180.00</span>
		<span class="s-item__shipping">Free shipping</span>
		<span class="SECONDARY_INFO">New (Other)</span>
	</li>
	<li class="s-item">
		<a class="s-item__link" href="https://www.ebay.com/itm/456"></a>
		<div class="s-item__title">Generic speaker stand</div>
		<span class="s-item__price">Contact seller</span>
	</li>
</ul>`

func testService(t *testing.T, cfg *config.Config) *Service {
	t.Helper()
	fetcher := NewFetcher(cfg, testLogger())
	limiter := ratelimit.NewFixed(cfg.RequestDelay)
	return NewService(cfg, fetcher, limiter, testLogger())
}

func TestServiceRunAccumulatesScoredListings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(servicePage))
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.SearchBaseURL = server.URL
	cfg.Queries = []string{"surround sound speaker system 5.1", "home theater speaker system"}
	cfg.MaxPages = 1
	cfg.RequestDelay = time.Millisecond

	svc := testService(t, cfg)

	listings := svc.Run(context.Background())

	// One parseable listing per query; the unpriced one is dropped.
	require.Len(t, listings, 2)
	for _, l := range listings {
		assert.Equal(t, "Bose Soundbar 700 Home Theater", l.Title)
		assert.Equal(t, 180.00, l.Price)
		assert.True(t, l.QualityBrand)
		assert.Equal(t, 8, l.DealScore)
	}
}

func TestServiceRunAbsorbsFailedPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("_pgn") == "2" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(servicePage))
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.SearchBaseURL = server.URL
	cfg.Queries = []string{"surround sound speaker system 5.1"}
	cfg.MaxPages = 3
	cfg.RequestDelay = time.Millisecond

	svc := testService(t, cfg)

	listings := svc.Run(context.Background())

	// Pages 1 and 3 succeed, page 2 is skipped.
	assert.Len(t, listings, 2)
}

func TestServiceRunVisitsPagesInOrder(t *testing.T) {
	var visited []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visited = append(visited, r.URL.Query().Get("_nkw")+"/"+r.URL.Query().Get("_pgn"))
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.SearchBaseURL = server.URL
	cfg.Queries = []string{"a", "b"}
	cfg.MaxPages = 2
	cfg.RequestDelay = time.Millisecond

	svc := testService(t, cfg)
	svc.Run(context.Background())

	assert.Equal(t, []string{"a/1", "a/2", "b/1", "b/2"}, visited)
}

func TestServiceRunStopsOnCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(servicePage))
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.SearchBaseURL = server.URL
	cfg.RequestDelay = time.Minute

	svc := testService(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, svc.Run(ctx))
}
