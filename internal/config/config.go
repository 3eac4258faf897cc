package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port     int
	LogLevel string
	LogDir   string

	// Storage selects the save backend: memory, sqlite or postgres
	Storage    string
	SQLitePath string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Seed for the simulation's random source; 0 means derive from the clock
	Seed int64

	AutosaveInterval time.Duration

	// APIKey enables request authentication when non-empty
	APIKey string

	// TrustedProxies lists proxy IPs allowed to set X-Forwarded-For
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:   getEnv("LOG_LEVEL", "INFO"),
		LogDir:     getEnv("LOG_DIR", "logs"),
		Storage:    getEnv("STORAGE_BACKEND", StorageSQLite),
		SQLitePath: getEnv("SQLITE_PATH", DefaultSQLitePath),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "guildmaster"),
		APIKey:     getEnv("API_KEY", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	seedStr := getEnv("GAME_SEED", "0")
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GAME_SEED value: %w", err)
	}
	cfg.Seed = seed

	intervalStr := getEnv("AUTOSAVE_INTERVAL_SECONDS", strconv.Itoa(DefaultAutosaveSeconds))
	intervalSecs, err := strconv.Atoi(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid AUTOSAVE_INTERVAL_SECONDS value: %w", err)
	}
	cfg.AutosaveInterval = time.Duration(intervalSecs) * time.Second

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, trimmed)
			}
		}
	}

	switch cfg.Storage {
	case StorageMemory, StorageSQLite, StoragePostgres:
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND value: %q", cfg.Storage)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
