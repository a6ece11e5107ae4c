package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	CamaraBaseURL     string
	UpstreamTimeout   time.Duration
	UpstreamRetries   int
	UpstreamRetryWait time.Duration
	FanoutDeputyCap   int
	FanoutWorkers     int
	FanoutDeadline    time.Duration
	SpeechItemCap     int
	SummaryCutoff     int
	PageSize          int
	PartyCacheTTL     time.Duration
	DeputyCacheTTL    time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:              getEnv("PORT", "8080"),
		CamaraBaseURL:     getEnv("CAMARA_BASE_URL", "https://dadosabertos.camara.leg.br/api/v2"),
		UpstreamTimeout:   getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		UpstreamRetries:   getEnvInt("UPSTREAM_RETRIES", 2),
		UpstreamRetryWait: getEnvDuration("UPSTREAM_RETRY_DELAY", time.Second),
		FanoutDeputyCap:   getEnvInt("FANOUT_DEPUTY_CAP", 20),
		FanoutWorkers:     getEnvInt("FANOUT_WORKERS", 5),
		FanoutDeadline:    getEnvDuration("FANOUT_DEADLINE", 15*time.Second),
		SpeechItemCap:     getEnvInt("SPEECH_ITEM_CAP", 100),
		SummaryCutoff:     getEnvInt("SUMMARY_CUTOFF", 500),
		PageSize:          getEnvInt("PAGE_SIZE", 10),
		PartyCacheTTL:     getEnvDuration("PARTY_CACHE_TTL", 24*time.Hour),
		DeputyCacheTTL:    getEnvDuration("DEPUTY_CACHE_TTL", time.Hour),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
