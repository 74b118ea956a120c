package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const devGameTokenSecret = "dev-game-token-secret"

type Config struct {
	// Server
	Port string
	Env  string

	// Logging
	LogFile string

	// Inference
	InferenceProvider    string
	InferenceBaseURL     string
	InferenceModel       string
	HuggingFaceAPIKey    string
	GeminiAPIKey         string
	GeminiModel          string
	InferenceConcurrency int
	InferenceMaxRetries  int
	InferenceTimeout     time.Duration
	ChatRateLimitPerMin  int

	// Redis (game sessions), empty means in-memory
	RedisURL string

	// Database (leaderboard), empty means in-memory
	DatabaseURL string

	// Game
	GameTokenSecret string
	GameSessionTTL  time.Duration

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	env := getEnvOrDefault("ENV", "development")

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Env:                  env,
		LogFile:              getEnvOrDefault("LOG_FILE", ""),
		InferenceProvider:    getEnvOrDefault("INFERENCE_PROVIDER", "huggingface"),
		InferenceBaseURL:     getEnvOrDefault("INFERENCE_BASE_URL", "https://api-inference.huggingface.co"),
		InferenceModel:       getEnvOrDefault("INFERENCE_MODEL", "HuggingFaceH4/zephyr-7b-beta"),
		HuggingFaceAPIKey:    os.Getenv("HUGGINGFACE_API_KEY"),
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		GeminiModel:          getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		InferenceConcurrency: getEnvAsIntOrDefault("INFERENCE_CONCURRENT_REQUESTS", 5),
		InferenceMaxRetries:  getEnvAsIntOrDefault("INFERENCE_MAX_RETRIES", 0),
		InferenceTimeout:     getEnvAsDurationOrDefault("INFERENCE_TIMEOUT", 0),
		ChatRateLimitPerMin:  getEnvAsIntOrDefault("CHAT_RATE_LIMIT_PER_MINUTE", 20),
		RedisURL:             getEnvOrDefault("REDIS_URL", ""),
		DatabaseURL:          getEnvOrDefault("DATABASE_URL", ""),
		GameSessionTTL:       getEnvAsDurationOrDefault("GAME_SESSION_TTL", 24*time.Hour),
		FrontendURL:          getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	if env == "production" {
		cfg.GameTokenSecret = mustGetEnv("GAME_TOKEN_SECRET")
	} else {
		cfg.GameTokenSecret = getEnvOrDefault("GAME_TOKEN_SECRET", devGameTokenSecret)
	}

	return cfg
}

// InferenceAPIKey returns the credential for the selected provider.
func (c *Config) InferenceAPIKey() string {
	if c.InferenceProvider == "gemini" {
		return c.GeminiAPIKey
	}
	return c.HuggingFaceAPIKey
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
