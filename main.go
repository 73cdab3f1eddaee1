// main.go
package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"cinemabook/cmd"
	"cinemabook/internal/data/catalog"
	"cinemabook/internal/data/entity"
	"cinemabook/internal/data/repository"
	"cinemabook/internal/wire"
	"cinemabook/pkg/database"
	"cinemabook/pkg/metrics"
	"cinemabook/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Open the booking store
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to open booking store", zap.Error(err))
	}
	defer db.Close()

	if err := repository.EnsureSchema(context.Background(), db); err != nil {
		logger.Fatal("Failed to prepare booking store schema", zap.Error(err))
	}

	logger.Info("Booking store ready", zap.String("driver", config.Database.Driver))

	// Build the static catalog; seat maps get a seeded pre-occupancy pattern
	seed := config.SeatMap.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	occupied := func(row, col int) bool {
		return rng.Float64() < config.SeatMap.OccupancyRate
	}

	pricing := entity.SeatPricing{
		Premium: config.Pricing.PremiumPrice,
		Regular: config.Pricing.RegularPrice,
	}
	theaters, err := catalog.Theaters(func(rows, seatsPerRow int) (entity.SeatMap, error) {
		return entity.GenerateSeatMap(rows, seatsPerRow, pricing, occupied)
	})
	if err != nil {
		logger.Fatal("Failed to build theater catalog", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, catalog.Movies(), theaters, logger)

	// Register metrics
	m := metrics.New()

	// Wire all dependencies
	app := wire.Wiring(repos, config, m, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
