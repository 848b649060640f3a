package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, sourced from the environment.
type Config struct {
	ServerPort   string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	SchemaPath   string
	JWTSecret    string
	JWTExpiresIn time.Duration
	CORSOrigins  string
}

// envOr reads an environment variable, falling back when it is unset or empty.
func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads configuration from the environment, after loading an optional
// .env file. Missing values fall back to development defaults.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		ServerPort:   envOr("PORT", "8080"),
		DBHost:       envOr("DB_HOST", "localhost"),
		DBPort:       envOr("DB_PORT", "5432"),
		DBUser:       envOr("DB_USER", "zapato_user"),
		DBPassword:   envOr("DB_PASSWORD", "zapato_password"),
		DBName:       envOr("DB_NAME", "zapato_db"),
		DBSSLMode:    envOr("DB_SSLMODE", "disable"),
		SchemaPath:   envOr("DB_SCHEMA_PATH", ""),
		JWTSecret:    envOr("JWT_SECRET", ""),
		CORSOrigins:  envOr("CORS_ALLOWED_ORIGINS", ""),
		JWTExpiresIn: 24 * time.Hour,
	}

	if expiresIn := envOr("JWT_EXPIRES_IN", ""); expiresIn != "" {
		if d, err := time.ParseDuration(expiresIn); err == nil {
			cfg.JWTExpiresIn = d
		}
	}

	return cfg
}
