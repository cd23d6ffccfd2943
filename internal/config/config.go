package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort          string
	AppEnv           string
	DataDir          string
	ShippingFlatRate float64
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		AppEnv:           getEnv("APP_ENV", "development"),
		DataDir:          getEnv("DATA_DIR", "./data"),
		ShippingFlatRate: getEnvFloat("SHIPPING_FLAT_RATE", 0.00),
	}

	if cfg.ShippingFlatRate < 0 {
		log.Fatal("SHIPPING_FLAT_RATE must not be negative")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("invalid value for %s: %v", key, err)
	}
	return f
}
