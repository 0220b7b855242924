package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// Scheduler knobs
	TickInterval             time.Duration
	ExecutionTimeout         time.Duration
	InsufficientFundsBackoff time.Duration

	// Event publishing (optional; empty URL disables publishing)
	RabbitMQURL       string
	MovementsExchange string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("TICK_INTERVAL", "1m")
	viper.SetDefault("EXECUTION_TIMEOUT", "10s")
	viper.SetDefault("INSUFFICIENT_FUNDS_BACKOFF", "0s")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("MOVEMENTS_EXCHANGE", "movements.events")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	var err error
	if cfg.TickInterval, err = parsePositiveDuration("TICK_INTERVAL"); err != nil {
		return nil, err
	}
	if cfg.ExecutionTimeout, err = parsePositiveDuration("EXECUTION_TIMEOUT"); err != nil {
		return nil, err
	}

	cfg.InsufficientFundsBackoff = viper.GetDuration("INSUFFICIENT_FUNDS_BACKOFF")
	if cfg.InsufficientFundsBackoff < 0 {
		return nil, fmt.Errorf("INSUFFICIENT_FUNDS_BACKOFF must not be negative")
	}

	cfg.RabbitMQURL = viper.GetString("RABBITMQ_URL")
	cfg.MovementsExchange = viper.GetString("MOVEMENTS_EXCHANGE")

	return cfg, nil
}

func parsePositiveDuration(key string) (time.Duration, error) {
	d := viper.GetDuration(key)
	if d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, viper.GetString(key))
	}
	return d, nil
}
