package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	DBDriver       string // postgres, mysql or sqlite
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	DBSSLMode      string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBLogLevel     string // silent, error, warn, info

	StaticDir       string
	TopTracksLimit  int
	ShutdownTimeout int // seconds
}

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port: getEnv("PORT", "3000"),

		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "upskill"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBLogLevel:     strings.ToLower(getEnv("DB_LOG_LEVEL", "warn")),

		StaticDir:       getEnv("STATIC_DIR", "./public"),
		TopTracksLimit:  getEnvInt("TOP_TRACKS_LIMIT", 5),
		ShutdownTimeout: getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 5),
	}

	if cfg.DBDriver == "sqlite" && os.Getenv("DB_NAME") == "" {
		cfg.DBName = "upskill.db"
	}

	// Validate critical configuration
	switch cfg.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		log.Printf("Warning: unknown DB_DRIVER %q, falling back to postgres.", cfg.DBDriver)
		cfg.DBDriver = "postgres"
	}
	if cfg.TopTracksLimit < 1 {
		log.Println("Warning: TOP_TRACKS_LIMIT must be positive, using 5.")
		cfg.TopTracksLimit = 5
	}

	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
