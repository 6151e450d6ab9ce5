package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_BACKEND", "GENERATOR", "GEN_MAX_TOKENS", "GEN_TEMPERATURE", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.Store.Backend)
	assert.Equal(t, "anthropic", cfg.Generator.Backend)
	assert.Equal(t, 150, cfg.Generator.MaxTokens)
	assert.Equal(t, 1.0, cfg.Generator.Temperature)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Mongo")
	t.Setenv("GENERATOR", "OpenAI")
	t.Setenv("GEN_MAX_TOKENS", "64")
	t.Setenv("GEN_TEMPERATURE", "0.3")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

	cfg := Load()

	assert.Equal(t, "mongo", cfg.Store.Backend)
	assert.Equal(t, "openai", cfg.Generator.Backend)
	assert.Equal(t, 64, cfg.Generator.MaxTokens)
	assert.InDelta(t, 0.3, cfg.Generator.Temperature, 1e-9)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("GEN_MAX_TOKENS", "lots")
	t.Setenv("GEN_TEMPERATURE", "-1")

	cfg := Load()

	assert.Equal(t, 150, cfg.Generator.MaxTokens)
	assert.Equal(t, 1.0, cfg.Generator.Temperature)
}

func TestPostgresConfig_DSNAndURL(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: "5433", User: "u", Password: "p", Name: "trivia", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=trivia sslmode=disable", p.DSN())
	assert.Equal(t, "postgres://u:p@db:5433/trivia?sslmode=disable", p.URL())
}
