package utils

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Pricing  PricingConfig
	Payment  PaymentConfig
	SeatMap  SeatMapConfig
	Ticket   TicketConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	// Driver selects the store backend: "sqlite" (default) or "postgres".
	Driver string
	// Path is the SQLite file location; ":memory:" keeps the store ephemeral.
	Path string
	// DSN is the PostgreSQL connection string when Driver is "postgres".
	DSN string
}

type PricingConfig struct {
	PremiumPrice   int
	RegularPrice   int
	ConvenienceFee int
}

type PaymentConfig struct {
	// DelayMs simulates gateway latency before a payment resolves.
	DelayMs int
	// FailureRate is the probability in [0,1] that a payment is declined.
	FailureRate float64
}

type SeatMapConfig struct {
	// OccupancyRate is the fraction of seats pre-booked at startup.
	OccupancyRate float64
	// Seed fixes the pre-booking pattern; 0 means seed from the clock.
	Seed int64
}

type TicketConfig struct {
	QRSecret string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "cinemabook")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_PATH", "data/cinemabook.db")
	viper.SetDefault("PREMIUM_PRICE", 300)
	viper.SetDefault("REGULAR_PRICE", 200)
	viper.SetDefault("CONVENIENCE_FEE", 20)
	viper.SetDefault("PAYMENT_DELAY_MS", 2000)
	viper.SetDefault("PAYMENT_FAILURE_RATE", 0.0)
	viper.SetDefault("SEAT_OCCUPANCY_RATE", 0.3)
	viper.SetDefault("SEAT_MAP_SEED", 0)
	viper.SetDefault("QR_SECRET", "cinemabook-ticket-secret-key32xx")

	// The .env file is optional; env vars and defaults cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Driver: viper.GetString("DB_DRIVER"),
			Path:   viper.GetString("DB_PATH"),
			DSN:    viper.GetString("DB_DSN"),
		},
		Pricing: PricingConfig{
			PremiumPrice:   viper.GetInt("PREMIUM_PRICE"),
			RegularPrice:   viper.GetInt("REGULAR_PRICE"),
			ConvenienceFee: viper.GetInt("CONVENIENCE_FEE"),
		},
		Payment: PaymentConfig{
			DelayMs:     viper.GetInt("PAYMENT_DELAY_MS"),
			FailureRate: viper.GetFloat64("PAYMENT_FAILURE_RATE"),
		},
		SeatMap: SeatMapConfig{
			OccupancyRate: viper.GetFloat64("SEAT_OCCUPANCY_RATE"),
			Seed:          viper.GetInt64("SEAT_MAP_SEED"),
		},
		Ticket: TicketConfig{
			QRSecret: viper.GetString("QR_SECRET"),
		},
	}

	return config, nil
}
