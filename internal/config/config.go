// Env loader
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendUrl string

	// completion API (OpenAI-compatible chat endpoint)
	LlmApiUrl string
	LlmApiKey string
	LlmModel  string

	// quran data sources
	QuranApiUrl        string
	AudioBaseUrl       string
	TranslationBaseUrl string

	NumVerses       int
	UpstreamTimeout time.Duration
}

// LoadConfig loads environment variables from the .env file. Missing vars fall
// back to defaults; only LLM_API_KEY is genuinely required, checked at startup.
func LoadConfig() *Config {
	_ = godotenv.Load() // no .env is fine in prod, vars come from the environment

	return &Config{
		Port:               getEnv("PORT", "1323"),
		FrontendUrl:        getEnv("FRONTEND_URL", "http://localhost:5173"),
		LlmApiUrl:          getEnv("LLM_API_URL", "https://openrouter.ai/api/v1/chat/completions"),
		LlmApiKey:          getEnv("LLM_API_KEY", ""),
		LlmModel:           getEnv("LLM_MODEL", "google/gemini-pro:free"),
		QuranApiUrl:        getEnv("QURAN_API_URL", "https://raw.githubusercontent.com/semarketir/quranjson/master/source/surah/surah_"),
		AudioBaseUrl:       getEnv("AUDIO_BASE_URL", "https://raw.githubusercontent.com/semarketir/quranjson/master/source/audio/"),
		TranslationBaseUrl: getEnv("TRANSLATION_BASE_URL", "https://raw.githubusercontent.com/semarketir/quranjson/master/source/translation/en/"),
		NumVerses:          getIntEnv("NUM_VERSES", 3),
		UpstreamTimeout:    getDurationEnv("UPSTREAM_TIMEOUT", 15*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
