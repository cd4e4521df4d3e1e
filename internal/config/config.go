package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultUsersQuery is the statement served by GET /users.
const DefaultUsersQuery = "SELECT * FROM users;"

// Config holds runtime configuration. It is read once at startup and passed down explicitly.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	DatabaseURL      string
	DBHost           string
	DBPort           int
	DBName           string
	DBUser           string
	DBPassword       string
	DBSSLMode        string
	DBConnectTimeout time.Duration
	UsersQuery       string

	LogLevel  string
	LogFormat string

	CORSAllowedOrigins []string
}

var defaults = map[string]any{
	"HTTP_ADDR":            "0.0.0.0:5000",
	"SHUTDOWN_TIMEOUT":     "10s",
	"DATABASE_URL":         "",
	"DB_HOST":              "db",
	"DB_PORT":              5432,
	"DB_NAME":              "testdb",
	"DB_USER":              "postgres",
	"DB_PASSWORD":          "password",
	"DB_SSLMODE":           "disable",
	"DB_CONNECT_TIMEOUT":   "5s",
	"USERS_QUERY":          DefaultUsersQuery,
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"CORS_ALLOWED_ORIGINS": "",
}

// Load reads a .env file when present and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from v, validating durations and log settings.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		HTTPAddr:    v.GetString("HTTP_ADDR"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		DBHost:      v.GetString("DB_HOST"),
		DBPort:      v.GetInt("DB_PORT"),
		DBName:      v.GetString("DB_NAME"),
		DBUser:      v.GetString("DB_USER"),
		DBPassword:  v.GetString("DB_PASSWORD"),
		DBSSLMode:   v.GetString("DB_SSLMODE"),
		UsersQuery:  strings.TrimSpace(v.GetString("USERS_QUERY")),
		LogLevel:    strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:   strings.ToLower(v.GetString("LOG_FORMAT")),
	}

	var err error
	if cfg.ShutdownTimeout, err = duration(v, "SHUTDOWN_TIMEOUT"); err != nil {
		return Config{}, err
	}
	if cfg.DBConnectTimeout, err = duration(v, "DB_CONNECT_TIMEOUT"); err != nil {
		return Config{}, err
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.UsersQuery == "" {
		return Config{}, errors.New("USERS_QUERY must not be empty")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "json", "console":
	default:
		return Config{}, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

func duration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, raw)
	}
	return d, nil
}
