package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	// AdminSecret gates delete, bulk interest and full listing. It is
	// process-wide configuration, never stored per account.
	AdminSecret string
	// MinBalance is the floor no debit may breach.
	MinBalance decimal.Decimal
	// DefaultInterestRate is used when an interest request omits the rate.
	DefaultInterestRate decimal.Decimal
	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and a .env
// file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ADMIN_SECRET", "")
	viper.SetDefault("MIN_BALANCE", "500")
	viper.SetDefault("DEFAULT_INTEREST_RATE", "0.04")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.AdminSecret = viper.GetString("ADMIN_SECRET")
	if cfg.AdminSecret == "" {
		log.Println("Warning: ADMIN_SECRET not set. Admin operations will be rejected.")
	}

	minBalance, err := decimal.NewFromString(viper.GetString("MIN_BALANCE"))
	if err != nil || minBalance.IsNegative() {
		minBalance = decimal.NewFromInt(500)
		log.Printf("Warning: Invalid MIN_BALANCE. Defaulting to %s.\n", minBalance)
	}
	cfg.MinBalance = minBalance

	rate, err := decimal.NewFromString(viper.GetString("DEFAULT_INTEREST_RATE"))
	if err != nil || rate.LessThanOrEqual(decimal.Zero) {
		rate = decimal.RequireFromString("0.04")
		log.Printf("Warning: Invalid DEFAULT_INTEREST_RATE. Defaulting to %s.\n", rate)
	}
	cfg.DefaultInterestRate = rate

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
