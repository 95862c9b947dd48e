package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	AppEnv          string
	PostgresURL     string
	JWTSecret       string
	CatalogCacheTTL time.Duration
	DraftTTL        time.Duration
	MaxTripDays     int
	SeedPath        string
}

func (c Config) IsProduction() bool { return c.AppEnv == "production" }

// Load reads .env when present and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		Port:            Get("PORT", "8080"),
		AppEnv:          Get("APP_ENV", "development"),
		PostgresURL:     Get("POSTGRES_URL", ""),
		JWTSecret:       Get("JWT_SECRET", ""),
		CatalogCacheTTL: GetDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		DraftTTL:        GetDuration("DRAFT_TTL", 2*time.Hour),
		MaxTripDays:     GetInt("MAX_TRIP_DAYS", 14),
		SeedPath:        Get("SEED_PATH", "data/seeds/kedah.json"),
	}
}

func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Ignoring invalid %s=%q", key, v)
		return fallback
	}
	return n
}

func GetDuration(key string, fallback time.Duration) time.Duration {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("Ignoring invalid %s=%q", key, v)
		return fallback
	}
	return d
}
