package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию сервера
type Config struct {
	Port             int
	MaxPurchasePrice float64
	MaxRate          float64
	MaxHoldingMonths int
	RedisAddr        string
	CacheTTL         time.Duration
	CacheSize        int
	OTELEndpoint     string
	OTELServiceName  string
	LogLevel         string
	LogPretty        bool
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnvInt("PORT", 8000),
		MaxPurchasePrice: getEnvFloat("MAX_PURCHASE_PRICE", 1e10),
		MaxRate:          getEnvFloat("MAX_RATE", 100),
		MaxHoldingMonths: getEnvInt("MAX_HOLDING_MONTHS", 240),
		RedisAddr:        getEnvString("REDIS_ADDR", ""),
		CacheTTL:         getEnvDuration("CACHE_TTL", 10*time.Minute),
		CacheSize:        getEnvInt("CACHE_SIZE", 10000),
		OTELEndpoint:     getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName:  getEnvString("OTEL_SERVICE_NAME", "mcp-realestate-server"),
		LogLevel:         getEnvString("LOG_LEVEL", "info"),
		LogPretty:        getEnvBool("LOG_PRETTY", false),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// Addr возвращает адрес HTTP сервера
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
