package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config хранит все параметры запуска приложения.
type Config struct {
	Env               string
	HTTPPort          string
	LogLevel          string
	StaticDir         string
	CatalogPath       string
	CatalogWatch      bool
	AllowedOrigins    []string
	RateLimitLimit    int64
	RateLimitPeriod   time.Duration
	SimulatedLatency  time.Duration
	HandoffTTL        time.Duration
	BuilderSessionTTL time.Duration
	DashboardCacheTTL time.Duration
	SeedData          bool
	NotificationLimit int
}

// Load читает .env (если он есть) и переменные окружения.
func Load() (*Config, error) {
	// Загружаем .env только если он существует, иначе используем системные переменные.
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("config: не удалось прочитать .env")
	}
	return FromEnv()
}

// FromEnv собирает конфигурацию из уже загруженного окружения.
func FromEnv() (*Config, error) {
	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		Env:         env,
		HTTPPort:    getEnv("PORT", getEnv("HTTP_PORT", "8091")),
		LogLevel:    getEnv("LOG_LEVEL", ""),
		StaticDir:   getEnv("STATIC_DIR", "./dist"),
		CatalogPath: strings.TrimSpace(getEnv("CATALOG_PATH", "")),
	}

	var err error
	if cfg.CatalogWatch, err = parseBool("CATALOG_WATCH", "false"); err != nil {
		return nil, err
	}
	if cfg.CatalogWatch && cfg.CatalogPath == "" {
		return nil, fmt.Errorf("config: CATALOG_WATCH требует CATALOG_PATH")
	}
	if cfg.SeedData, err = parseBool("SEED_DATA", "true"); err != nil {
		return nil, err
	}

	originsStr := getEnv("CORS_ALLOWED_ORIGINS", "")
	if originsStr == "" {
		if env == "production" {
			return nil, fmt.Errorf("config: CORS_ALLOWED_ORIGINS обязателен в production")
		}
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173", "http://localhost:8091"}
	} else {
		for _, origin := range strings.Split(originsStr, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	if cfg.RateLimitLimit, err = parseInt64("RATE_LIMIT_LIMIT", "60"); err != nil {
		return nil, err
	}
	if cfg.RateLimitPeriod, err = parseDuration("RATE_LIMIT_PERIOD", "1m"); err != nil {
		return nil, err
	}
	if cfg.SimulatedLatency, err = parseDuration("SIMULATED_LATENCY", "1s"); err != nil {
		return nil, err
	}
	if cfg.HandoffTTL, err = parseDuration("HANDOFF_TTL", "24h"); err != nil {
		return nil, err
	}
	if cfg.BuilderSessionTTL, err = parseDuration("BUILDER_SESSION_TTL", "2h"); err != nil {
		return nil, err
	}
	if cfg.DashboardCacheTTL, err = parseDuration("DASHBOARD_CACHE_TTL", "30s"); err != nil {
		return nil, err
	}
	limit, err := parseInt64("NOTIFICATION_LIMIT", "100")
	if err != nil {
		return nil, err
	}
	cfg.NotificationLimit = int(limit)

	if cfg.SimulatedLatency < 0 || cfg.HandoffTTL <= 0 || cfg.DashboardCacheTTL < 0 {
		return nil, fmt.Errorf("config: длительности не могут быть отрицательными, HANDOFF_TTL должен быть положительным")
	}
	if cfg.BuilderSessionTTL <= 0 {
		return nil, fmt.Errorf("config: BUILDER_SESSION_TTL должен быть положительным")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или дефолт.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	v := getEnv(key, fallback)
	dur, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: не удалось распарсить длительность %s=%q: %w", key, v, err)
	}
	return dur, nil
}

func parseInt64(key, fallback string) (int64, error) {
	v := getEnv(key, fallback)
	num, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: не удалось распарсить число %s=%q: %w", key, v, err)
	}
	return num, nil
}

func parseBool(key, fallback string) (bool, error) {
	v := getEnv(key, fallback)
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: не удалось распарсить флаг %s=%q: %w", key, v, err)
	}
	return b, nil
}
