package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"skema/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Backend BackendConfig
	Extract ExtractConfig
	Session SessionConfig
	Redis   RedisConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds schema catalog storage settings. Store selects the
// repository implementation ("memory" or "postgres"); the connection
// fields apply only to postgres.
type DBConfig struct {
	Store    string `mapstructure:"store"`
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

// BackendConfig holds settings for the LLM backend the extraction
// strategies run against.
type BackendConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
	DefaultModel string `mapstructure:"default_model"`
	MaxTokens    int    `mapstructure:"max_tokens"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ExtractConfig holds extraction pipeline settings.
type ExtractConfig struct {
	// Strategies is the default strategy order for requests that do not
	// specify one. Names must match domain.AllStrategies.
	Strategies []string `mapstructure:"strategies"`
}

// SessionConfig holds conversation session settings. Store selects the
// session store implementation ("memory" or "redis").
type SessionConfig struct {
	Store    string `mapstructure:"store"`
	MaxTurns int    `mapstructure:"max_turns"`
}

// RedisConfig holds Redis connection settings for the redis session store.
type RedisConfig struct {
	Addr       string        `mapstructure:"addr"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the SKEMA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SKEMA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults (memory store needs none of the connection fields)
	v.SetDefault("db.store", "memory")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "skema")
	v.SetDefault("db.password", "skema_secret")
	v.SetDefault("db.name", "skema_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Backend defaults
	v.SetDefault("backend.provider", "openai")
	v.SetDefault("backend.api_key", "")
	v.SetDefault("backend.base_url", "")
	v.SetDefault("backend.default_model", "")
	v.SetDefault("backend.max_tokens", 1024)
	v.SetDefault("backend.timeout_secs", 120)

	// Extract defaults
	v.SetDefault("extract.strategies", defaultStrategyCSV())

	// Session defaults
	v.SetDefault("session.store", "memory")
	v.SetDefault("session.max_turns", 20)

	// Redis defaults
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.session_ttl", "24h")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":           "SKEMA_SERVER_PORT",
		"server.read_timeout":   "SKEMA_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "SKEMA_SERVER_WRITE_TIMEOUT",
		"server.environment":    "SKEMA_SERVER_ENVIRONMENT",
		"db.store":              "SKEMA_DB_STORE",
		"db.host":               "SKEMA_DB_HOST",
		"db.port":               "SKEMA_DB_PORT",
		"db.user":               "SKEMA_DB_USER",
		"db.password":           "SKEMA_DB_PASSWORD",
		"db.name":               "SKEMA_DB_NAME",
		"db.sslmode":            "SKEMA_DB_SSLMODE",
		"db.max_open":           "SKEMA_DB_MAX_OPEN",
		"db.max_idle":           "SKEMA_DB_MAX_IDLE",
		"backend.provider":      "SKEMA_BACKEND_PROVIDER",
		"backend.api_key":       "SKEMA_BACKEND_API_KEY",
		"backend.base_url":      "SKEMA_BACKEND_BASE_URL",
		"backend.default_model": "SKEMA_BACKEND_DEFAULT_MODEL",
		"backend.max_tokens":    "SKEMA_BACKEND_MAX_TOKENS",
		"backend.timeout_secs":  "SKEMA_BACKEND_TIMEOUT_SECS",
		"extract.strategies":    "SKEMA_EXTRACT_STRATEGIES",
		"session.store":         "SKEMA_SESSION_STORE",
		"session.max_turns":     "SKEMA_SESSION_MAX_TURNS",
		"redis.addr":            "SKEMA_REDIS_ADDR",
		"redis.password":        "SKEMA_REDIS_PASSWORD",
		"redis.db":              "SKEMA_REDIS_DB",
		"redis.session_ttl":     "SKEMA_REDIS_SESSION_TTL",
		"cors.allowed_origins":  "SKEMA_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SKEMA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SKEMA_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Store:    v.GetString("db.store"),
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Backend = BackendConfig{
		Provider:     v.GetString("backend.provider"),
		APIKey:       v.GetString("backend.api_key"),
		BaseURL:      v.GetString("backend.base_url"),
		DefaultModel: v.GetString("backend.default_model"),
		MaxTokens:    v.GetInt("backend.max_tokens"),
		TimeoutSecs:  v.GetInt("backend.timeout_secs"),
	}
	cfg.Extract = ExtractConfig{
		Strategies: splitCSV(v.GetString("extract.strategies")),
	}
	cfg.Session = SessionConfig{
		Store:    v.GetString("session.store"),
		MaxTurns: v.GetInt("session.max_turns"),
	}
	cfg.Redis = RedisConfig{
		Addr:       v.GetString("redis.addr"),
		Password:   v.GetString("redis.password"),
		DB:         v.GetInt("redis.db"),
		SessionTTL: v.GetDuration("redis.session_ttl"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitCSV(v.GetString("cors.allowed_origins")),
	}

	return cfg, nil
}

// defaultStrategyCSV renders domain.DefaultStrategyOrder as the config value
// format, keeping the priority order defined in one place.
func defaultStrategyCSV() string {
	names := make([]string, len(domain.DefaultStrategyOrder))
	for i, s := range domain.DefaultStrategyOrder {
		names[i] = string(s)
	}
	return strings.Join(names, ",")
}

// splitCSV splits a comma-separated value into trimmed non-empty parts.
func splitCSV(s string) []string {
	var parts []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
