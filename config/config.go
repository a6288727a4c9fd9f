package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string
	Env  string

	AdminUsername string
	AdminPassword string
	JWTSecret     string
	TokenTTL      time.Duration

	// Aggregation settings.
	MetricsRefreshInterval time.Duration
	LowStockThreshold      int
	OverstockThreshold     int
	GuestEmail             string

	// Checkout handoff.
	WhatsAppPhone string

	CORSOrigins []string
}

func Load() Config {
	return Config{
		Port:                   getEnv("PORT", "8080"),
		Env:                    getEnv("ENV", "development"),
		AdminUsername:          getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:          getEnv("ADMIN_PASSWORD", "admin123"),
		JWTSecret:              getEnv("JWT_SECRET", "change-me-in-production"),
		TokenTTL:               getDuration("TOKEN_TTL", 12*time.Hour),
		MetricsRefreshInterval: getDuration("METRICS_REFRESH_INTERVAL", 3*time.Second),
		LowStockThreshold:      getInt("LOW_STOCK_THRESHOLD", 5),
		OverstockThreshold:     getInt("OVERSTOCK_THRESHOLD", 100),
		GuestEmail:             getEnv("GUEST_EMAIL", "guest@example.com"),
		WhatsAppPhone:          getEnv("WHATSAPP_PHONE", "941228089"),
		CORSOrigins:            []string{getEnv("CORS_ORIGIN", "http://localhost:5173")},
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
