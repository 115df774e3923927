package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env                 string
	Port                int
	DefaultUserPassword string
	SessionTTL          time.Duration
	OTELEndpoint        string
	MaxBodyBytes        int64
}

func Load() Config {
	env := getEnv("APP_ENV", "dev")
	port := getEnvInt("PORT", 3001)
	defaultPassword := getEnv("DEFAULT_USER_PASSWORD", "")
	sessionTTLHours := getEnvInt("SESSION_TTL_HOURS", 24)
	otelEndpoint := getEnv("OTEL_EXPORTER_ENDPOINT", "")
	maxBody := getEnvInt("MAX_BODY_BYTES", 1<<20)

	return Config{
		Env:                 env,
		Port:                port,
		DefaultUserPassword: defaultPassword,
		SessionTTL:          time.Duration(sessionTTLHours) * time.Hour,
		OTELEndpoint:        otelEndpoint,
		MaxBodyBytes:        int64(maxBody),
	}
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			fmt.Println(err)
		}

		return num
	}
	return fallback
}
