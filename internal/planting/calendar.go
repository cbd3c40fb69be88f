package planting

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/i474232898/garden-planner/internal/fetch"
)

// DefaultBaseURL is the almanac planting calendar prefix; the zip code is appended.
const DefaultBaseURL = "https://www.almanac.com/gardening/planting-calendar/zipcode"

// Calendar fetches and extracts planting calendars by zip code.
type Calendar struct {
	baseURL string
	fetcher fetch.Fetcher
}

// NewCalendar creates a Calendar. An empty baseURL falls back to DefaultBaseURL.
func NewCalendar(fetcher fetch.Fetcher, baseURL string) *Calendar {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Calendar{
		baseURL: strings.TrimRight(baseURL, "/"),
		fetcher: fetcher,
	}
}

// browserHeader mimics a desktop browser; the almanac site rejects bare clients.
func browserHeader() http.Header {
	h := http.Header{}
	h.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	h.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	return h
}

// URL returns the calendar page address for zipcode.
func (c *Calendar) URL(zipcode string) string {
	return c.baseURL + "/" + url.PathEscape(zipcode)
}

// Records fetches the calendar page for zipcode and extracts its rows.
func (c *Calendar) Records(ctx context.Context, zipcode string) ([]Record, error) {
	body, err := c.fetcher.Fetch(ctx, c.URL(zipcode), browserHeader())
	if err != nil {
		return nil, fmt.Errorf("planting data for %s: %w", zipcode, err)
	}

	records, err := Extract(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("planting data for %s: %w", zipcode, err)
	}
	return records, nil
}
