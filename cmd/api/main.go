package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	apianalysis "hospital_intelligence/pkg/api/analysis"
	apimarket "hospital_intelligence/pkg/api/market"
	"hospital_intelligence/pkg/core/analysis"
	"hospital_intelligence/pkg/core/benchmark"
	"hospital_intelligence/pkg/core/config"
	"hospital_intelligence/pkg/core/market"
	"hospital_intelligence/pkg/core/progression"
	"hospital_intelligence/pkg/core/store"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	engine := analysis.NewBenchmarkingEngine()

	// Threshold overrides (optional): BENCHMARK_CONFIG points at a YAML or
	// HJSON file; absent it, the static tables apply.
	if path := os.Getenv("BENCHMARK_CONFIG"); path != "" {
		overrides, err := config.Load(path)
		if err != nil {
			fmt.Printf("[WARNING] Failed to load config %s: %v\n", path, err)
			fmt.Println("  Falling back to static benchmark tables")
		} else {
			stages, err := overrides.StageTable()
			if err != nil {
				fmt.Printf("[WARNING] Invalid stage overrides: %v\n", err)
			} else {
				engine.SetClassifier(benchmark.NewClassifierWithTable(stages))
			}
			framework, err := overrides.FrameworkTable()
			if err != nil {
				fmt.Printf("[WARNING] Invalid transition overrides: %v\n", err)
			} else {
				engine.SetRoadmapBuilder(progression.NewRoadmapBuilderWithTable(framework))
			}
			fmt.Printf("[CONFIG] Loaded threshold overrides from %s\n", path)
		}
	}

	analysisHandler := apianalysis.NewHandler(engine)

	// Database is optional for the API: scoring works without it.
	if err := store.InitDB(context.Background()); err != nil {
		fmt.Printf("[WARNING] Database not available: %v\n", err)
		fmt.Println("  Analyses will not be persisted")
	} else {
		defer store.Close()
		analysisHandler.Hospitals = store.NewHospitalRepo(store.GetPool())
	}

	http.HandleFunc("/api/analysis/run", analysisHandler.HandleAnalyze)
	http.HandleFunc("/api/analysis/hospital", analysisHandler.HandleAnalyzeByName)
	http.HandleFunc("/api/analysis/report", analysisHandler.HandleReport)

	// Market lookups need a directory endpoint; without one the handler
	// reports unavailable.
	var fetcher *market.DirectoryFetcher
	if dirURL := os.Getenv("MARKET_DIRECTORY_URL"); dirURL != "" {
		fetcher = market.NewDirectoryFetcher(dirURL, market.NewCache(market.DefaultTTL, market.DefaultMaxSize))
		fmt.Printf("[CONFIG] Market directory: %s\n", dirURL)
	}
	marketHandler := apimarket.NewHandler(fetcher)
	http.HandleFunc("/api/market/city", marketHandler.HandleCity)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - POST /api/analysis/run      (JSON result)")
	fmt.Println("  - GET  /api/analysis/hospital (analyze stored hospital by name)")
	fmt.Println("  - POST /api/analysis/report   (HTML report)")
	fmt.Println("  - GET  /api/market/city       (city market context)")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("Server failed: %v\n", err)
		os.Exit(1)
	}
}
