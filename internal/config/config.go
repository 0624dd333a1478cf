package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration shared by the binaries.
type Config struct {
	Port           string
	DatabaseURL    string
	RedisURL       string
	ContextPath    string
	SeedPath       string
	Locale         string
	CacheTTL       time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

// LoadDotEnv loads a .env file when one exists.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:        Get("PORT", "8080"),
		DatabaseURL: Get("DATABASE_URL", ""),
		RedisURL:    Get("REDIS_URL", ""),
		ContextPath: Get("CONTEXT_PATH", ""),
		SeedPath:    Get("SEED_PATH", "data/seeds/context.yaml"),
		Locale:      Get("SUMMARY_LOCALE", "id"),
	}

	ttl, err := time.ParseDuration(Get("SUMMARY_CACHE_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: SUMMARY_CACHE_TTL: %w", err)
	}
	if ttl < 0 {
		return Config{}, fmt.Errorf("load config: SUMMARY_CACHE_TTL must not be negative")
	}
	cfg.CacheTTL = ttl

	rps, err := strconv.ParseFloat(Get("RATE_LIMIT_RPS", "20"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("load config: RATE_LIMIT_RPS: %w", err)
	}
	cfg.RateLimitRPS = rps

	burst, err := strconv.Atoi(Get("RATE_LIMIT_BURST", "40"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: RATE_LIMIT_BURST: %w", err)
	}
	if burst < 1 {
		return Config{}, fmt.Errorf("load config: RATE_LIMIT_BURST must be at least 1")
	}
	cfg.RateLimitBurst = burst

	return cfg, nil
}
