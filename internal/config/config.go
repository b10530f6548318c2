package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration

	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	SettingsCacheTTL time.Duration

	MailAPIURL     string
	MailAPIKey     string
	MailSender     string
	MailSenderName string

	CORSAllowedOrigins string
}

// Load reads .env (when present) and environment variables with
// defaults suitable for local development.
func Load() Config {
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}

	c := Config{
		AppEnv:             env("APP_ENV", "prod"),
		HTTPAddr:           env("HTTP_ADDR", ":8080"),
		DatabaseURL:        env("DATABASE_URL", "hotelbooking.db"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTTTL:             time.Duration(atoi("JWT_TTL_HOURS", 24)) * time.Hour,
		RedisAddr:          env("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      env("REDIS_PASSWORD", ""),
		RedisDB:            atoi("REDIS_DB", 0),
		SettingsCacheTTL:   time.Duration(atoi("SETTINGS_CACHE_TTL_SECONDS", 3600)) * time.Second,
		MailAPIURL:         env("MAIL_API_URL", "https://api.brevo.com/v3/smtp/email"),
		MailAPIKey:         os.Getenv("MAIL_API_KEY"),
		MailSender:         env("MAIL_SENDER", "no-reply@bookingmvp.com"),
		MailSenderName:     env("MAIL_SENDER_NAME", "BookingMVP"),
		CORSAllowedOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
	}
	if c.MailAPIKey == "" {
		log.Warn().Msg("MAIL_API_KEY is empty, email delivery disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
