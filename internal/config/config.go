package config

import (
	"fmt"
	"time"
)

// Config is the fixed policy for a single run. It is constructed once at
// startup and passed into each component; nothing mutates it afterwards.
type Config struct {
	Queries        []string
	MaxPages       int
	SearchBaseURL  string
	MinPrice       int
	MaxPrice       int
	ConditionCodes []string
	QualityBrands  []string

	UserAgent      string
	AcceptLanguage string
	FetchTimeout   time.Duration
	RequestDelay   time.Duration

	MinDealScore  int
	FallbackCount int
	MaxReportRows int
	TitleWidth    int
	LinkWidth     int
}

// Default returns the reference policy: four overlapping speaker searches,
// Buy It Now listings between $50 and $500, two pages per query.
func Default() *Config {
	return &Config{
		Queries: []string{
			"surround sound speaker system 5.1",
			"surround sound speaker set 7.1",
			"home theater speaker system",
			"surround sound speaker package high end",
		},
		MaxPages:      2,
		SearchBaseURL: "https://www.ebay.com/sch/i.html",
		MinPrice:      50,
		MaxPrice:      500,
		// New, open box, certified refurbished, seller refurbished, used.
		ConditionCodes: []string{"1000", "1500", "2000", "2500", "3000"},
		QualityBrands: []string{
			"bose", "sonos", "klipsch", "polk", "yamaha", "denon", "sony",
			"jbl", "harman kardon", "samsung", "lg", "onkyo", "pioneer",
			"definitive technology", "svs", "kef", "b&w", "bowers", "paradigm",
			"martin logan", "elac", "monoprice", "vizio", "enclave",
		},
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
			"AppleWebKit/537.36 (KHTML, like Gecko) " +
			"Chrome/120.0.0.0 Safari/537.36",
		AcceptLanguage: "en-US,en;q=0.9",
		FetchTimeout:   15 * time.Second,
		RequestDelay:   1500 * time.Millisecond,
		MinDealScore:   3,
		FallbackCount:  15,
		MaxReportRows:  20,
		TitleWidth:     80,
		LinkWidth:      100,
	}
}

func (c *Config) Validate() error {
	if len(c.Queries) == 0 {
		return fmt.Errorf("at least one search query is required")
	}
	if c.MaxPages < 1 {
		return fmt.Errorf("MaxPages must be at least 1")
	}
	if c.SearchBaseURL == "" {
		return fmt.Errorf("SearchBaseURL is required")
	}
	if c.MinPrice < 0 || c.MaxPrice < c.MinPrice {
		return fmt.Errorf("price bounds must satisfy 0 <= MinPrice <= MaxPrice")
	}
	if c.UserAgent == "" {
		return fmt.Errorf("UserAgent is required")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FetchTimeout must be positive")
	}
	if c.RequestDelay <= 0 {
		return fmt.Errorf("RequestDelay must be positive")
	}
	if c.FallbackCount < 1 || c.MaxReportRows < 1 {
		return fmt.Errorf("report caps must be at least 1")
	}
	if c.TitleWidth < 1 || c.LinkWidth < 1 {
		return fmt.Errorf("display widths must be at least 1")
	}
	return nil
}
