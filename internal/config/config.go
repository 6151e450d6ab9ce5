package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string
	// AllowedOrigins feeds rs/cors. Empty means all origins are permitted.
	AllowedOrigins []string

	Store     StoreConfig
	Generator GeneratorConfig
}

// StoreConfig selects and configures the document store backend.
type StoreConfig struct {
	// Backend is one of "postgres", "mongo", "redis", "memory".
	Backend string

	Postgres PostgresConfig
	MongoURI string
	MongoDB  string
	RedisURL string
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the lib/pq keyword/value connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Name, p.SSLMode,
	)
}

// URL returns the postgres:// form golang-migrate expects.
func (p PostgresConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Name, p.SSLMode)
}

// GeneratorConfig selects the text-generation backend and its fixed
// sampling parameters.
type GeneratorConfig struct {
	// Backend is one of "anthropic", "openai", "gemini", "cli", "mock".
	Backend string

	AnthropicAPIKey string
	AnthropicModel  string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	GeminiAPIKey string
	GeminiModel  string

	LocalModelCmd string

	MaxTokens   int
	Temperature float64
}

// Load reads configuration from environment variables with defaults.
// A .env file is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "pretty"),
		AllowedOrigins: parseList(getEnv("ALLOWED_ORIGINS", "")),
		Store: StoreConfig{
			Backend: strings.ToLower(getEnv("STORE_BACKEND", "postgres")),
			Postgres: PostgresConfig{
				Host:     getEnv("DB_HOST", "localhost"),
				Port:     getEnv("DB_PORT", "5432"),
				User:     getEnv("DB_USER", "trivia_user"),
				Password: getEnv("DB_PASSWORD", "trivia_password"),
				Name:     getEnv("DB_NAME", "trivia"),
				SSLMode:  getEnv("DB_SSLMODE", "disable"),
			},
			MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
			MongoDB:  getEnv("MONGO_DATABASE", "trivia"),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),
		},
		Generator: GeneratorConfig{
			Backend:         strings.ToLower(getEnv("GENERATOR", "anthropic")),
			AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
			AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-haiku-4-5"),
			OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
			GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
			GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			LocalModelCmd:   getEnv("LOCAL_MODEL_CMD", "ollama run llama3.2"),
			MaxTokens:       getEnvInt("GEN_MAX_TOKENS", 150),
			Temperature:     getEnvFloat("GEN_TEMPERATURE", 1.0),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return fallback
	}
	return f
}

// parseList splits a comma-separated string into a trimmed slice.
// Returns nil if the input is empty.
func parseList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
