package shared

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceMySQL   = "mysql"
)

type Config struct {
	AppEnv          string
	LogLevel        string
	HTTPAddr        string
	MetricsAddr     string
	ShutdownTimeout time.Duration

	RedisAddr    string
	RedisDB      int
	RedisPass    string
	CacheEnabled bool
	CacheTTL     time.Duration

	CatalogSource string
	CatalogFile   string
	MySQLDSN      string

	GeoURL string
	GeoRPS int

	CORSOrigins []string
	WarmWorkers int
}

var defaults = map[string]any{
	"APP_ENV":                  "prod",
	"LOG_LEVEL":                "info",
	"HTTP_ADDR":                ":8080",
	"METRICS_ADDR":             "",
	"SHUTDOWN_TIMEOUT_SECONDS": 10,
	"REDIS_ADDR":               "localhost:6379",
	"REDIS_PASSWORD":           "",
	"REDIS_DB":                 0,
	"CACHE_ENABLED":            true,
	"CACHE_TTL_SECONDS":        900,
	"CATALOG_SOURCE":           SourceBuiltin,
	"CATALOG_FILE":             "",
	"MYSQL_DSN":                "root:root@tcp(localhost:3306)/kitchen_cali?parseTime=true&charset=utf8mb4,utf8&loc=UTC",
	"GEO_BOUNDARIES_URL":       "",
	"GEO_RPS":                  2,
	"CORS_ORIGINS":             "http://localhost:3000",
	"WARM_WORKERS":             4,
}

// Load reads the environment, after merging an optional .env file from the
// working directory. Real environment variables win over .env entries.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}

	v := viper.New()
	v.AutomaticEnv()
	for k, def := range defaults {
		v.SetDefault(k, def)
	}

	c := Config{
		AppEnv:          v.GetString("APP_ENV"),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		HTTPAddr:        v.GetString("HTTP_ADDR"),
		MetricsAddr:     v.GetString("METRICS_ADDR"),
		ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisDB:         v.GetInt("REDIS_DB"),
		RedisPass:       v.GetString("REDIS_PASSWORD"),
		CacheEnabled:    v.GetBool("CACHE_ENABLED"),
		CacheTTL:        time.Duration(v.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		CatalogSource:   strings.ToLower(v.GetString("CATALOG_SOURCE")),
		CatalogFile:     v.GetString("CATALOG_FILE"),
		MySQLDSN:        v.GetString("MYSQL_DSN"),
		GeoURL:          v.GetString("GEO_BOUNDARIES_URL"),
		GeoRPS:          v.GetInt("GEO_RPS"),
		CORSOrigins:     splitList(v.GetString("CORS_ORIGINS")),
		WarmWorkers:     v.GetInt("WARM_WORKERS"),
	}
	if c.GeoURL == "" {
		log.Warn().Msg("GEO_BOUNDARIES_URL is empty; region boundaries disabled")
	}
	return c
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	switch c.CatalogSource {
	case SourceBuiltin:
	case SourceFile:
		if c.CatalogFile == "" {
			return fmt.Errorf("CATALOG_FILE is required when CATALOG_SOURCE=file")
		}
	case SourceMySQL:
		if c.MySQLDSN == "" {
			return fmt.Errorf("MYSQL_DSN is required when CATALOG_SOURCE=mysql")
		}
	default:
		return fmt.Errorf("invalid catalog source: %s (must be builtin, file, or mysql)", c.CatalogSource)
	}
	if c.CacheEnabled && c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must be positive when the cache is enabled")
	}
	if c.WarmWorkers < 1 {
		return fmt.Errorf("WARM_WORKERS must be at least 1")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
