package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	Log     LogConfig
	CORS    CORSConfig
	OpenAI  OpenAIConfig
	Pricing PricingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds token validation settings. Tokens carry an opaque user
// identity consumed only at the persistence boundary.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OpenAIConfig holds remote expense parser settings. An empty APIKey disables
// the remote path entirely; extraction then runs heuristic-only.
type OpenAIConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	MaxTokens   int    `mapstructure:"max_tokens"`
}

// PricingConfig holds cost-estimation constants for usage telemetry. They
// affect only the reported totals, never extraction behavior.
type PricingConfig struct {
	InputPerMTok  float64 `mapstructure:"input_per_mtok"`
	OutputPerMTok float64 `mapstructure:"output_per_mtok"`
	USDToINR      float64 `mapstructure:"usd_inr"`
}

// Load reads configuration from environment variables with the EXPENSEY_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EXPENSEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "expensey")
	v.SetDefault("db.password", "expensey_secret")
	v.SetDefault("db.name", "expensey_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "expensey")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// OpenAI defaults; api_key empty means the remote path is disabled
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.timeout_secs", 30)
	v.SetDefault("openai.max_tokens", 300)

	// Pricing defaults: gpt-4o-mini list price in USD per 1M tokens
	v.SetDefault("pricing.input_per_mtok", 0.15)
	v.SetDefault("pricing.output_per_mtok", 0.60)
	v.SetDefault("pricing.usd_inr", 83.0)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "EXPENSEY_SERVER_PORT",
		"server.read_timeout":     "EXPENSEY_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "EXPENSEY_SERVER_WRITE_TIMEOUT",
		"server.environment":      "EXPENSEY_SERVER_ENVIRONMENT",
		"db.host":                 "EXPENSEY_DB_HOST",
		"db.port":                 "EXPENSEY_DB_PORT",
		"db.user":                 "EXPENSEY_DB_USER",
		"db.password":             "EXPENSEY_DB_PASSWORD",
		"db.name":                 "EXPENSEY_DB_NAME",
		"db.sslmode":              "EXPENSEY_DB_SSLMODE",
		"db.max_open":             "EXPENSEY_DB_MAX_OPEN",
		"db.max_idle":             "EXPENSEY_DB_MAX_IDLE",
		"jwt.secret":              "EXPENSEY_JWT_SECRET",
		"jwt.issuer":              "EXPENSEY_JWT_ISSUER",
		"log.level":               "EXPENSEY_LOG_LEVEL",
		"log.format":              "EXPENSEY_LOG_FORMAT",
		"cors.allowed_origins":    "EXPENSEY_CORS_ALLOWED_ORIGINS",
		"openai.api_key":          "EXPENSEY_OPENAI_API_KEY",
		"openai.model":            "EXPENSEY_OPENAI_MODEL",
		"openai.timeout_secs":     "EXPENSEY_OPENAI_TIMEOUT_SECS",
		"openai.max_tokens":       "EXPENSEY_OPENAI_MAX_TOKENS",
		"pricing.input_per_mtok":  "EXPENSEY_PRICING_INPUT_PER_MTOK",
		"pricing.output_per_mtok": "EXPENSEY_PRICING_OUTPUT_PER_MTOK",
		"pricing.usd_inr":         "EXPENSEY_PRICING_USD_INR",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if EXPENSEY_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("EXPENSEY_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret: v.GetString("jwt.secret"),
		Issuer: v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.OpenAI = OpenAIConfig{
		APIKey:      v.GetString("openai.api_key"),
		Model:       v.GetString("openai.model"),
		TimeoutSecs: v.GetInt("openai.timeout_secs"),
		MaxTokens:   v.GetInt("openai.max_tokens"),
	}
	cfg.Pricing = PricingConfig{
		InputPerMTok:  v.GetFloat64("pricing.input_per_mtok"),
		OutputPerMTok: v.GetFloat64("pricing.output_per_mtok"),
		USDToINR:      v.GetFloat64("pricing.usd_inr"),
	}

	return cfg, nil
}
