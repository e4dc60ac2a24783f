package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the service.
type Config struct {
	AppName     string
	Environment string
	HTTP        HTTPConfig
	Spanner     SpannerConfig
	Redis       RedisConfig
	Catalog     CatalogConfig
	Logger      LoggerConfig
}

type HTTPConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type SpannerConfig struct {
	Database string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CatalogConfig tunes the query engine defaults. PageSize matches the
// storefront grid (12 cards per page); TopSellingLimit is the number of
// products badged as top sellers.
type CatalogConfig struct {
	PageSize        int
	TopSellingLimit int
	RankCacheTTL    time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from the environment, consulting a local .env
// file when present. Missing variables fall back to development defaults.
func Load() *Config {
	// .env is optional; ignore the error when the file does not exist
	_ = godotenv.Load()

	return &Config{
		AppName:     getEnv("APP_NAME", "storefront-catalog"),
		Environment: getEnv("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Port:            getEnv("HTTP_PORT", "8080"),
			ReadTimeout:     getDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getDuration("HTTP_SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		Spanner: SpannerConfig{
			Database: getEnv("SPANNER_DATABASE",
				"projects/test-project/instances/dev-instance/databases/storefront-db"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Catalog: CatalogConfig{
			PageSize:        getInt("CATALOG_PAGE_SIZE", 12),
			TopSellingLimit: getInt("CATALOG_TOP_SELLING_LIMIT", 4),
			RankCacheTTL:    getDuration("CATALOG_RANK_CACHE_TTL", 5*time.Minute),
		},
		Logger: LoggerConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Encoding: getEnv("LOG_ENCODING", "json"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
