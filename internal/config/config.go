package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort          = "8080"
	defaultDatabaseURL   = "places.db"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultJWTTTL        = "24h"
	defaultUploadDir     = "uploads"
	defaultUploadBaseURL = "/uploads"
	defaultGeoEndpoint   = "http://ip-api.com/json"
	defaultGeoTimeout    = "4s"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTTTL        time.Duration
	UploadDir     string
	UploadBaseURL string
	GeoEndpoint   string
	GeoTimeout    time.Duration
}

// Load reads .env when present, then environment variables, falling back to
// development defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := &Config{
		Port:          getEnv("PORT", defaultPort),
		DatabaseURL:   getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:     getEnv("JWT_SECRET", defaultJWTSecret),
		UploadDir:     getEnv("UPLOAD_DIR", defaultUploadDir),
		UploadBaseURL: getEnv("UPLOAD_BASE_URL", defaultUploadBaseURL),
		GeoEndpoint:   getEnv("GEO_ENDPOINT", defaultGeoEndpoint),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.GeoTimeout, err = parseDurationEnv("GEO_TIMEOUT", defaultGeoTimeout)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}
