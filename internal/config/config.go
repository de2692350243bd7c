package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv             string
	LogLevel           slog.Level
	ApiServicePort     string
	PostgreSQLHost     string
	PostgreSQLPort     int64
	PostgreSQLUser     string
	PostgreSQLPassword string
	PostgreSQLDatabase string
	JWTSecret          string
	TokenExpiration    int64
	RedisHost          string
	RedisPort          int64
	RedisPassword      string
	RedisDB            int64
	LoginRateLimit     int64
	LoginRateWindow    int64
}

func LoadConfig() *Config {
	// Load .env when present; a missing file is not an error.
	_ = godotenv.Load()

	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),                  // Default development
		LogLevel:           getLogLevel(),                                     // Default INFO
		ApiServicePort:     getEnv("API_SERVICE_PORT", "8080"),                // Default 8080
		PostgreSQLHost:     getEnv("POSTGRESQL_HOST", "db"),                   // Default db
		PostgreSQLPort:     getEnvAsInt64("POSTGRESQL_PORT", 5432),            // Default 5432
		PostgreSQLUser:     getEnv("POSTGRESQL_USER", "ideias_user"),          // Default user
		PostgreSQLPassword: getEnv("POSTGRESQL_PASSWORD", "ideias_password"),  // Default password
		PostgreSQLDatabase: getEnv("POSTGRESQL_DATABASE", "banco_ideias"),     // Default database name
		JWTSecret:          getEnv("JWT_SECRET", "troque_em_producao"),        // Default secret key
		TokenExpiration:    getEnvAsInt64("TOKEN_EXPIRATION", 604800),         // Default 7 days
		RedisHost:          getEnv("REDIS_HOST", "redis"),                     // Default redis
		RedisPort:          getEnvAsInt64("REDIS_PORT", 6379),                 // Default 6379
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),                      // Default empty
		RedisDB:            getEnvAsInt64("REDIS_DATABASE", 0),                // Default 0
		LoginRateLimit:     getEnvAsInt64("LOGIN_RATE_LIMIT", 10),             // Default 10 attempts
		LoginRateWindow:    getEnvAsInt64("LOGIN_RATE_WINDOW", 60),            // Default 60 seconds
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
