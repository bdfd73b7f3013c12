// Package config loads process configuration from the environment once at
// startup. The resulting Config is immutable and passed explicitly to
// constructors; no package keeps ambient secret state.
package config

import (
	"log"
	"os"
	"time"
)

// Config holds runtime settings for the quill server.
//
// Fields:
//   - Addr: bind address for the HTTP server.
//   - DBPath: directory for the Badger database.
//   - UploadsDir: directory where cover assets are written and served from.
//   - Secret: HMAC secret for signing session tokens (HS256).
//   - TokenTTL: session token lifetime; expired tokens fail verification.
//   - FrontendOrigin: the single trusted origin allowed to make credentialed
//     cross-origin requests.
type Config struct {
	Addr           string
	DBPath         string
	UploadsDir     string
	Secret         string
	TokenTTL       time.Duration
	FrontendOrigin string
}

// Load builds a Config from environment variables, falling back to
// development defaults.
func Load() *Config {
	cfg := &Config{
		Addr:           getEnv("QUILL_ADDR", ":8080"),
		DBPath:         getEnv("QUILL_DB_PATH", "data/badger"),
		UploadsDir:     getEnv("QUILL_UPLOADS_DIR", "uploads"),
		Secret:         getEnv("QUILL_SECRET", ""),
		TokenTTL:       getDuration("QUILL_TOKEN_TTL", 24*time.Hour),
		FrontendOrigin: getEnv("QUILL_FRONTEND_ORIGIN", "http://localhost:5173"),
	}

	if cfg.Secret == "" {
		cfg.Secret = "dev-secret-change-me"
		log.Println("warning: QUILL_SECRET not set, using insecure development secret")
	}

	return cfg
}

// getEnv returns the value of the environment variable or the default.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("warning: invalid %s %q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
