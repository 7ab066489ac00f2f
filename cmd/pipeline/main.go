package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"hospital_intelligence/pkg/core/analysis"
	"hospital_intelligence/pkg/core/market"
	"hospital_intelligence/pkg/core/report"
	"hospital_intelligence/pkg/core/store"
	"hospital_intelligence/pkg/models"

	"github.com/joho/godotenv"
)

// Batch runner: reads hospital metric records from a JSON file or the
// database, analyzes each one, prints the report, and persists results when a
// database is configured.
func main() {
	inputPath := flag.String("input", "hospitals.json", "path to a JSON array of hospital metrics")
	fromDB := flag.Bool("from-db", false, "load hospitals from the database instead of -input")
	marketFeed := flag.String("market-feed", "", "optional market data feed to enrich records missing market context")
	persist := flag.Bool("persist", false, "save results to the database")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	ctx := context.Background()
	var repo store.AnalysisRepository
	if *persist || *fromDB {
		if err := store.InitDB(ctx); err != nil {
			log.Fatalf("Critical: database required but unavailable: %v", err)
		}
		defer store.Close()
		if *persist {
			repo = store.NewAnalysisRepo()
		}
	}

	hospitals, err := loadHospitals(ctx, *inputPath, *fromDB)
	if err != nil {
		log.Fatalf("Critical: %v", err)
	}

	if *marketFeed != "" {
		if err := enrichFromFeed(hospitals, *marketFeed); err != nil {
			fmt.Printf("Warning: market feed not usable: %v\n", err)
		}
	}

	engine := analysis.NewBenchmarkingEngine()
	start := time.Now()
	completed, failed := 0, 0

	for i := range hospitals {
		m := &hospitals[i]
		fmt.Printf("Analyzing %s...\n", m.Name)

		req, err := analysis.NewRequest(m)
		if err != nil {
			fmt.Printf("  Skipping %s: %v\n", m.Name, err)
			failed++
			continue
		}

		result := engine.AnalyzeHospital(req)
		result.ReportText = report.Generate(result)

		if result.Status == analysis.StatusCompleted {
			completed++
		} else {
			failed++
		}

		fmt.Println(result.ReportText)

		if repo != nil {
			if err := repo.Save(ctx, result); err != nil {
				fmt.Printf("  Warning: failed to persist %s: %v\n", m.Name, err)
			}
		}
	}

	fmt.Printf("Pipeline completed: %d analyzed, %d failed/skipped in %v\n",
		completed, failed, time.Since(start))
}

func loadHospitals(ctx context.Context, inputPath string, fromDB bool) ([]models.HospitalMetrics, error) {
	if fromDB {
		hospitalRepo := store.NewHospitalRepo(store.GetPool())
		names, err := hospitalRepo.ListHospitals(ctx)
		if err != nil {
			return nil, fmt.Errorf("cannot list hospitals: %w", err)
		}

		var hospitals []models.HospitalMetrics
		for _, name := range names {
			m, err := hospitalRepo.GetHospital(ctx, name)
			if err != nil {
				fmt.Printf("Warning: skipping %s: %v\n", name, err)
				continue
			}
			hospitals = append(hospitals, *m)
		}
		return hospitals, nil
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read input file %s: %w", inputPath, err)
	}
	var hospitals []models.HospitalMetrics
	if err := json.Unmarshal(data, &hospitals); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", inputPath, err)
	}
	return hospitals, nil
}

// enrichFromFeed fills missing market context fields from a city feed keyed by
// the hospital's city. Explicit values on the record always win.
func enrichFromFeed(hospitals []models.HospitalMetrics, feedPath string) error {
	cities, err := market.LoadFeed(feedPath)
	if err != nil {
		return err
	}

	byCity := make(map[string]market.CityMarketData, len(cities))
	for _, c := range cities {
		byCity[c.City] = c
	}

	enriched := 0
	for i := range hospitals {
		data, ok := byCity[hospitals[i].City]
		if !ok {
			continue
		}
		if hospitals[i].CompetitionDensity == "" {
			hospitals[i].CompetitionDensity = data.CompetitionDensity
			enriched++
		}
		if hospitals[i].MarketMaturity == "" {
			hospitals[i].MarketMaturity = data.MarketMaturity
		}
	}
	fmt.Printf("Market feed: %d cities loaded, %d hospitals enriched\n", len(cities), enriched)
	return nil
}
