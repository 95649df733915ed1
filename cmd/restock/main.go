// cmd/restock/main.go is the batch runner: it computes restocking
// recommendations from the database, prints the console report and writes
// the CSV/JSON artifacts, optionally rendering charts and uploading exports.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/andresuchdata/restockd/internal/cache"
	"github.com/andresuchdata/restockd/internal/charts"
	"github.com/andresuchdata/restockd/internal/config"
	"github.com/andresuchdata/restockd/internal/domain"
	"github.com/andresuchdata/restockd/internal/engine"
	"github.com/andresuchdata/restockd/internal/export"
	"github.com/andresuchdata/restockd/internal/report"
	"github.com/andresuchdata/restockd/internal/repository"
	"github.com/andresuchdata/restockd/internal/repository/postgres"
	"github.com/andresuchdata/restockd/internal/service"
	"github.com/andresuchdata/restockd/internal/storage"
	"github.com/andresuchdata/restockd/pkg/logger"
)

// engineFlags seeds the flag defaults from the environment-provided knobs,
// so precedence is flag > env > canonical default.
func engineFlags(defaults engine.Params) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "window-days", Usage: "Trailing sales window in days", Value: defaults.WindowDays},
		&cli.IntFlag{Name: "safety-stock-days", Usage: "Days of demand held as safety stock", Value: defaults.SafetyStockDays},
		&cli.IntFlag{Name: "buffer-days", Usage: "Reorder buffer on top of shipment time", Value: defaults.BufferDays},
		&cli.IntFlag{Name: "replenish-days", Usage: "Replenishment planning horizon in days", Value: defaults.ReplenishDays},
		&cli.Float64Flag{Name: "default-shipment-time", Usage: "Fallback shipment time in days", Value: defaults.DefaultShipmentTime},
	}
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := &cli.App{
		Name:  "restock",
		Usage: "Compute restocking recommendations and supply-chain analytics",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run the recommendation engine and export the results",
				Flags: append(engineFlags(cfg.Engine.Params()),
					&cli.BoolFlag{Name: "charts", Usage: "Render analytics charts as PNG"},
					&cli.BoolFlag{Name: "upload", Usage: "Upload exports to object storage"},
					&cli.BoolFlag{Name: "no-cache", Usage: "Bypass the recommendation cache"},
				),
				Action: runEngine,
			},
			{
				Name:  "analytics",
				Usage: "Print and export carrier, product and shortage analytics",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "charts", Usage: "Render analytics charts as PNG"},
					&cli.IntFlag{Name: "top", Usage: "Number of top products to rank", Value: 5},
				},
				Action: runAnalytics,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func paramsFromFlags(c *cli.Context) engine.Params {
	return engine.Params{
		WindowDays:          c.Int("window-days"),
		SafetyStockDays:     c.Int("safety-stock-days"),
		BufferDays:          c.Int("buffer-days"),
		ReplenishDays:       c.Int("replenish-days"),
		DefaultShipmentTime: c.Float64("default-shipment-time"),
	}.Normalize()
}

func runEngine(c *cli.Context) error {
	cfg := config.Load()
	logger.SetLevel(cfg.Server.LogLevel)

	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	recCache := cache.NewNoopRecommendationCache()
	if !c.Bool("no-cache") {
		if rc, err := cache.NewRecommendationCache(cfg.Cache); err == nil {
			recCache = rc
		} else {
			logger.Log.Warn().Err(err).Msg("Cache unavailable, continuing without it")
		}
	}

	svc := service.NewRestockService(repository.NewRestockRepository(db.DB), recCache)

	start := time.Now()
	recs, err := svc.Recommendations(c.Context, paramsFromFlags(c))
	if err != nil {
		return err
	}
	logger.Log.Info().Dur("elapsed", time.Since(start)).Int("flagged", len(recs)).Msg("Engine run finished")

	if err := report.WriteRestockReport(os.Stdout, recs); err != nil {
		return err
	}

	csvPath, jsonPath, err := export.SaveRecommendations(cfg.App.OutputDir, recs)
	if err != nil {
		return err
	}
	fmt.Printf("\nWrote %s and %s\n", csvPath, jsonPath)

	if c.Bool("charts") {
		if err := renderCharts(c, cfg, db); err != nil {
			return err
		}
	}

	if c.Bool("upload") {
		if err := uploadExports(c, cfg, csvPath, jsonPath); err != nil {
			return err
		}
	}

	return nil
}

func runAnalytics(c *cli.Context) error {
	cfg := config.Load()
	logger.SetLevel(cfg.Server.LogLevel)

	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := service.NewAnalyticsService(repository.NewAnalyticsRepository(db.DB))

	carriers, err := svc.CarrierPerformance(c.Context)
	if err != nil {
		return err
	}
	products, err := svc.TopProducts(c.Context, c.Int("top"))
	if err != nil {
		return err
	}
	shortages, err := svc.Shortages(c.Context)
	if err != nil {
		return err
	}

	if err := report.WriteCarrierReport(os.Stdout, carriers); err != nil {
		return err
	}
	fmt.Println()
	if err := report.WriteTopProductsReport(os.Stdout, products); err != nil {
		return err
	}
	fmt.Println()
	if err := report.WriteShortageReport(os.Stdout, shortages); err != nil {
		return err
	}

	outDir := cfg.App.OutputDir
	if err := saveCSV(filepath.Join(outDir, "carrier_performance.csv"), func(f *os.File) error {
		return export.WriteCarrierPerformanceCSV(f, carriers)
	}); err != nil {
		return err
	}
	if err := saveCSV(filepath.Join(outDir, "top_products.csv"), func(f *os.File) error {
		return export.WriteTopProductsCSV(f, products)
	}); err != nil {
		return err
	}
	if err := saveCSV(filepath.Join(outDir, "shortages.csv"), func(f *os.File) error {
		return export.WriteShortagesCSV(f, shortages)
	}); err != nil {
		return err
	}
	fmt.Printf("\nWrote analytics CSVs to %s\n", outDir)

	if c.Bool("charts") {
		paths, err := renderAnalyticsCharts(cfg.App.ChartDir, carriers, products, shortages)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Printf("Wrote %s\n", p)
		}
	}

	return nil
}

func renderCharts(c *cli.Context, cfg *config.Config, db *postgres.DB) error {
	svc := service.NewAnalyticsService(repository.NewAnalyticsRepository(db.DB))

	carriers, err := svc.CarrierPerformance(c.Context)
	if err != nil {
		return err
	}
	products, err := svc.TopProducts(c.Context, 5)
	if err != nil {
		return err
	}
	shortages, err := svc.Shortages(c.Context)
	if err != nil {
		return err
	}

	paths, err := renderAnalyticsCharts(cfg.App.ChartDir, carriers, products, shortages)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Printf("Wrote %s\n", p)
	}
	return nil
}

func renderAnalyticsCharts(dir string, carriers []domain.CarrierPerformance, products []domain.TopProduct, shortages []domain.ShortageRow) ([]string, error) {
	carrierPath, err := charts.SaveCarrierPerformancePNG(dir, carriers)
	if err != nil {
		return nil, fmt.Errorf("failed to render carrier chart: %w", err)
	}
	productsPath, err := charts.SaveTopProductsPNG(dir, products)
	if err != nil {
		return nil, fmt.Errorf("failed to render top products chart: %w", err)
	}
	shortagePath, err := charts.SaveShortageDistributionPNG(dir, shortages)
	if err != nil {
		return nil, fmt.Errorf("failed to render shortage chart: %w", err)
	}
	return []string{carrierPath, productsPath, shortagePath}, nil
}

func uploadExports(c *cli.Context, cfg *config.Config, paths ...string) error {
	if !cfg.Storage.Enabled {
		return fmt.Errorf("object storage is not enabled, set STORAGE_ENABLED=true")
	}

	client, err := storage.NewMinioClient(cfg.Storage)
	if err != nil {
		return err
	}

	prefix := time.Now().Format("2006-01-02")
	for _, path := range paths {
		key := fmt.Sprintf("exports/%s/%s", prefix, filepath.Base(path))
		if err := client.UploadFile(c.Context, key, path); err != nil {
			return err
		}
		fmt.Printf("Uploaded %s\n", key)
	}
	return nil
}

func saveCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
