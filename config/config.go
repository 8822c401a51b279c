package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port    string
	Storage string // db|memory

	// connection factory settings; DatabaseURL wins over the discrete parts
	DBDriver      string // postgres|sqlite
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBName        string
	DBUser        string
	DBPassword    string
	DBSSLMode     string
	DBPath        string // sqlite only
	DBMaxConns    int
	DBConnTimeout time.Duration

	SeedOnStart bool
	SeedXLSX    string

	ImportAllowedDomains string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	cfg := AppConfig{
		Port:                 get("PORT", "8080"),
		Storage:              get("STORAGE", "db"),
		DBDriver:             get("DB_DRIVER", "postgres"),
		DatabaseURL:          get("DATABASE_URL", ""),
		DBHost:               get("DB_HOST", "localhost"),
		DBPort:               get("DB_PORT", "5432"),
		DBName:               get("DB_NAME", "hempdb"),
		DBUser:               get("DB_USER", "postgres"),
		DBPassword:           get("DB_PASSWORD", ""),
		DBSSLMode:            get("DB_SSLMODE", "disable"),
		DBPath:               get("DB_PATH", "hempdb.db"),
		DBMaxConns:           getInt("DB_MAX_CONNS", 10),
		DBConnTimeout:        time.Duration(getInt("DB_CONN_TIMEOUT_SEC", 5)) * time.Second,
		SeedOnStart:          get("SEED_ON_START", "true") == "true",
		SeedXLSX:             get("SEED_XLSX", ""),
		ImportAllowedDomains: get("IMPORT_ALLOWED_DOMAINS", ""),
	}
	log.Printf("[cfg] port=%s storage=%s driver=%s sslmode=%s pool=%d", cfg.Port, cfg.Storage, cfg.DBDriver, cfg.DBSSLMode, cfg.DBMaxConns)
	return cfg
}

// PostgresDSN assembles the key/value DSN from the discrete parts when no
// DATABASE_URL is given.
func (c AppConfig) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBPassword, c.DBSSLMode)
}
