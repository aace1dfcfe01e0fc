package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	Env           string
	RedisURL      string
	JWTSecret     string
	PublicBaseURL string

	// QuantityStep is how much one "add to cart" adds; catalog variants sold
	// by volume use 0.5.
	QuantityStep float64

	// Simulated payment provider latencies.
	PushDelay    time.Duration
	ConfirmDelay time.Duration
	ChargeDelay  time.Duration

	// NotificationTTL is how long a toast stays visible before it dismisses
	// itself.
	NotificationTTL time.Duration
}

func Load() Config {
	return Config{
		Port:            getEnv("PORT", "8088"),
		Env:             getEnv("APP_ENV", "development"),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key"),
		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", "https://sparkly.store"),
		QuantityStep:    getEnvFloat("QUANTITY_STEP", 1),
		PushDelay:       getEnvDuration("PAYMENT_PUSH_DELAY", 1500*time.Millisecond),
		ConfirmDelay:    getEnvDuration("PAYMENT_CONFIRM_DELAY", 2*time.Second),
		ChargeDelay:     getEnvDuration("PAYMENT_CHARGE_DELAY", 2500*time.Millisecond),
		NotificationTTL: getEnvDuration("NOTIFICATION_TTL", 3*time.Second),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
