package config

import (
	"crypto/rand"
	"encoding/base64"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port         string
	DBDriver     string
	DBSource     string
	SessionKey   []byte
	CSRFKey      []byte
	JWTSecret    []byte
	CookieSecure bool
	MediaDir     string
	LogLevel     string
	GinMode      string

	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env file")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBSource:      getEnv("DB_SOURCE", "food_order.db"),
		SessionKey:    keyFromEnv("SESSION_KEY"),
		CSRFKey:       keyFromEnv("CSRF_KEY"),
		JWTSecret:     []byte(getEnv("JWT_SECRET", "food_order_dev_secret")),
		CookieSecure:  getEnv("COOKIE_SECURE", "false") == "true",
		MediaDir:      getEnv("MEDIA_DIR", "media"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// keyFromEnv decodes a base64 key of at least 32 bytes. Anything else falls back
// to a random key, which invalidates cookies on every restart.
func keyFromEnv(key string) []byte {
	raw := os.Getenv(key)
	if raw != "" {
		decoded, err := base64.StdEncoding.DecodeString(raw)
		if err == nil && len(decoded) >= 32 {
			return decoded
		}
		log.Warn().Str("key", key).Msg("key is invalid or shorter than 32 bytes, generating a random one")
	} else {
		log.Warn().Str("key", key).Msg("key not set, generating a random one for development")
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal().Err(err).Msg("failed to read random bytes")
	}
	return b
}
