package market

import (
	"encoding/json"
	"fmt"
	"os"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// LoadFeed reads a market-data feed file into city records. Feeds arrive from
// partner consultancies in varying quality: strict JSON is tried first, then
// HJSON (comments, trailing commas, unquoted keys), then automatic JSON
// repair as a last resort.
func LoadFeed(path string) ([]CityMarketData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read market feed %s: %w", path, err)
	}
	return ParseFeed(raw)
}

// ParseFeed parses feed bytes with the lenient fallback chain.
func ParseFeed(raw []byte) ([]CityMarketData, error) {
	var cities []CityMarketData

	// 1. Strict JSON.
	if err := json.Unmarshal(raw, &cities); err == nil {
		return normalize(cities), nil
	}

	// 2. HJSON (human-edited feeds).
	if err := hjson.Unmarshal(raw, &cities); err == nil {
		return normalize(cities), nil
	}

	// 3. Automatic repair of malformed JSON.
	repaired, err := jsonrepair.RepairJSON(string(raw))
	if err != nil {
		return nil, fmt.Errorf("market feed is not parseable JSON: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &cities); err != nil {
		return nil, fmt.Errorf("market feed unparseable even after repair: %w", err)
	}
	return normalize(cities), nil
}

// normalize fills derivable labels that feeds commonly omit.
func normalize(cities []CityMarketData) []CityMarketData {
	for i := range cities {
		if cities[i].CompetitionDensity == "" {
			cities[i].CompetitionDensity = densityForCount(cities[i].CompetitorCount)
		}
		if cities[i].MarketMaturity == "" {
			cities[i].MarketMaturity = maturityForBeds(cities[i].TotalBeds)
		}
	}
	return cities
}
