package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultGeminiModel is the model every primary-route request is sent to.
const DefaultGeminiModel = "gemini-pro"

type Config struct {
	// Server
	Port            string
	Env             string
	ShutdownTimeout int // seconds

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// Frontend
	FrontendURL string
}

// ClientConfig configures the terminal chat client.
type ClientConfig struct {
	ServerURL string
	Theme     string
	Backend   string
	LogFile   string
}

// Load reads the server configuration. A missing GEMINI_API_KEY panics:
// the process cannot serve the primary route without it.
func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		Env:             getEnvOrDefault("ENV", "development"),
		ShutdownTimeout: getEnvAsIntOrDefault("SHUTDOWN_TIMEOUT_SECONDS", 30),
		GeminiAPIKey:    mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:     getEnvOrDefault("GEMINI_MODEL", DefaultGeminiModel),
		FrontendURL:     getEnvOrDefault("FRONTEND_URL", "*"),
	}

	return cfg
}

func LoadClient() *ClientConfig {
	godotenv.Load()

	return &ClientConfig{
		ServerURL: getEnvOrDefault("CHAT_SERVER_URL", "http://localhost:8080"),
		Theme:     getEnvOrDefault("CHAT_THEME", "light"),
		Backend:   getEnvOrDefault("CHAT_BACKEND", "gemini"),
		LogFile:   getEnvOrDefault("CHAT_LOG_FILE", ""),
	}
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
