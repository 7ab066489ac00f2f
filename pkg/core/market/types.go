// Package market supplies market context for analyses: competitor density
// and market maturity per city, fetched from directory listings or loaded
// from data feeds, with an injected bounded TTL cache in front.
package market

import "time"

// CityMarketData is the raw market context for one city.
type CityMarketData struct {
	City               string    `json:"city"`
	CompetitorCount    int       `json:"competitor_count"`
	TotalBeds          int       `json:"total_beds"`
	CompetitionDensity string    `json:"competition_density"` // "low", "medium", "high"
	MarketMaturity     string    `json:"market_maturity"`     // "emerging", "developing", "mature"
	FetchedAt          time.Time `json:"fetched_at"`
}

// densityForCount buckets a competitor count into a density label.
func densityForCount(competitors int) string {
	switch {
	case competitors >= 15:
		return "high"
	case competitors >= 6:
		return "medium"
	default:
		return "low"
	}
}
