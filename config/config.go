package config

import (
	"main/utils"
	"time"
)

type Config struct {
	Port string

	// External insight generation
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	GeminiTimeout time.Duration

	// Optional collaborators; empty means disabled
	MongoURI   string
	MongoDB    string
	RedisURL   string
	InsightTTL time.Duration

	SeedDemoData bool
}

func Load() Config {
	return Config{
		Port:          utils.GetEnvAsString("PORT", "8080"),
		GeminiAPIKey:  utils.GetEnvAsString("GEMINI_API_KEY", ""),
		GeminiModel:   utils.GetEnvAsString("GEMINI_MODEL", "gemini-pro"),
		GeminiBaseURL: utils.GetEnvAsString("GEMINI_BASE_URL", ""),
		GeminiTimeout: utils.GetEnvAsDuration("GEMINI_TIMEOUT", 60*time.Second),
		MongoURI:      utils.GetEnvAsString("MONGO_URI", ""),
		MongoDB:       utils.GetEnvAsString("MONGO_DB", "lifetrack"),
		RedisURL:      utils.GetEnvAsString("REDIS_URL", ""),
		InsightTTL:    utils.GetEnvAsDuration("INSIGHT_CACHE_TTL", 24*time.Hour),
		SeedDemoData:  utils.GetEnvAsBool("SEED_DEMO_DATA", false),
	}
}
