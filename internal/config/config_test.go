package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expensey/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Empty(t, cfg.OpenAI.APIKey)
	assert.Equal(t, 300, cfg.OpenAI.MaxTokens)
	assert.Equal(t, 0.15, cfg.Pricing.InputPerMTok)
	assert.Equal(t, 0.60, cfg.Pricing.OutputPerMTok)
	assert.Equal(t, 83.0, cfg.Pricing.USDToINR)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EXPENSEY_OPENAI_API_KEY", "sk-test")
	t.Setenv("EXPENSEY_OPENAI_MODEL", "gpt-4o")
	t.Setenv("EXPENSEY_DB_NAME", "expensey_test")
	t.Setenv("EXPENSEY_PRICING_USD_INR", "90")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "expensey_test", cfg.DB.Name)
	assert.Equal(t, 90.0, cfg.Pricing.USDToINR)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Port)
}

func TestDBConfig_DSN(t *testing.T) {
	cfg := config.DBConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5432/n?sslmode=disable", cfg.DSN())
}
