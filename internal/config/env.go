package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Extractor strategy names accepted in EXTRACTOR.
const (
	ExtractorHeuristic = "heuristic"
	ExtractorModel     = "model"
)

// Config carries all runtime settings. It is built once at startup and passed
// down explicitly; nothing reads the environment after Load returns.
type Config struct {
	Port         string
	UploadDir    string
	MaxUploadMB  int
	Extractor    string
	AIAPIKey     string
	GenModel     string
	ModelTimeout time.Duration
}

// Load reads the environment (with .env support) and returns the config.
func Load() *Config {

	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		UploadDir:    getEnv("UPLOAD_DIR", os.TempDir()),
		MaxUploadMB:  getEnvInt("MAX_UPLOAD_MB", 25),
		Extractor:    getEnv("EXTRACTOR", ExtractorHeuristic),
		AIAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GenModel:     getEnv("GEN_MODEL", "gemini-1.5-flash"),
		ModelTimeout: time.Duration(getEnvInt("MODEL_TIMEOUT_SECONDS", 60)) * time.Second,
	}

	if cfg.Extractor != ExtractorHeuristic && cfg.Extractor != ExtractorModel {
		log.Fatalf("EXTRACTOR must be %q or %q, got %q", ExtractorHeuristic, ExtractorModel, cfg.Extractor)
	}
	if cfg.Extractor == ExtractorModel && cfg.AIAPIKey == "" {
		log.Fatal("GEMINI_API_KEY not set")
	}

	return cfg
}

// MaxUploadBytes is the request body cap for uploads.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("WARN: %s=%q not an int, using default %d", key, v, def)
		return def
	}
	return n
}
