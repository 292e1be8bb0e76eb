package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	// Storage
	StoreDriver string // "memory" (mock collections) or "postgres"
	DatabaseURL string
	TablePrefix string
	// Local data (connection settings file, seed fixture)
	DataDir     string
	SeedFixture string // optional YAML fixture path; empty = built-in dataset
	// OCR engine
	OCRFailureRate float64 // fraction of mock extractions that fail (0.0 - 1.0)
	OCRDelayMillis int     // simulated per-document engine latency
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    env,
		CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:3000"),
		StoreDriver:    getEnv("STORE", "memory"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		TablePrefix:    getTablePrefix(env),
		DataDir:        getEnv("DATA_DIR", "./data"),
		SeedFixture:    getEnv("SEED_FIXTURE", ""),
		OCRFailureRate: getFloat("OCR_FAILURE_RATE", 0.05),
		OCRDelayMillis: getInt("OCR_DELAY_MS", 250),
		Debug:          getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
