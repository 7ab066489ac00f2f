package market

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DirectoryFetcher retrieves competitor data for a city by parsing a hospital
// directory's HTML listing. Results go through the injected cache so repeated
// analyses of hospitals in the same city do not refetch.
type DirectoryFetcher struct {
	baseURL string
	client  *http.Client
	cache   *Cache
}

// NewDirectoryFetcher creates a fetcher against the given directory base URL.
// A nil cache disables caching.
func NewDirectoryFetcher(baseURL string, cache *Cache) *DirectoryFetcher {
	return &DirectoryFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
		cache:   cache,
	}
}

// FetchCity returns market context for a city, from cache when fresh.
func (f *DirectoryFetcher) FetchCity(ctx context.Context, city string) (CityMarketData, error) {
	if f.cache != nil {
		if data, ok := f.cache.Get(city); ok {
			return data, nil
		}
	}

	url := fmt.Sprintf("%s/hospitals?city=%s", f.baseURL, city)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return CityMarketData{}, fmt.Errorf("failed to build directory request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return CityMarketData{}, fmt.Errorf("directory fetch failed for %s: %w", city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return CityMarketData{}, fmt.Errorf("directory returned status %d for %s", resp.StatusCode, city)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return CityMarketData{}, fmt.Errorf("failed to parse directory HTML: %w", err)
	}

	data := parseDirectory(doc, city)
	if f.cache != nil {
		f.cache.Put(city, data)
	}
	return data, nil
}

// parseDirectory extracts competitor rows from the listing table. Expected
// shape: one <table> with rows of [name, beds, ...]; rows that do not parse
// are skipped rather than failing the whole fetch.
func parseDirectory(doc *goquery.Document, city string) CityMarketData {
	competitors := 0
	totalBeds := 0

	doc.Find("table tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return // header or malformed row
		}
		name := strings.TrimSpace(cells.Eq(0).Text())
		if name == "" {
			return
		}
		competitors++

		bedsText := strings.TrimSpace(cells.Eq(1).Text())
		if beds, err := strconv.Atoi(strings.ReplaceAll(bedsText, ",", "")); err == nil {
			totalBeds += beds
		}
	})

	return CityMarketData{
		City:               city,
		CompetitorCount:    competitors,
		TotalBeds:          totalBeds,
		CompetitionDensity: densityForCount(competitors),
		MarketMaturity:     maturityForBeds(totalBeds),
		FetchedAt:          time.Now(),
	}
}

// maturityForBeds buckets total market capacity into a maturity label.
func maturityForBeds(totalBeds int) string {
	switch {
	case totalBeds >= 3000:
		return "mature"
	case totalBeds >= 800:
		return "developing"
	default:
		return "emerging"
	}
}
