package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

type Config struct {
	Port        string
	DBDriver    string
	DBDSN       string
	JWTSecret   string
	JWTTTL      time.Duration
	CORSOrigins []string
	Location    *time.Location
	Seed        bool
}

// Load reads configuration from the environment. Call godotenv.Load first if
// a .env file should take part.
func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBDSN:       getEnv("DB_DSN", "nsdrink.db"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      parseDuration("JWT_TTL", 24*time.Hour),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		Seed:        parseBool("SEED", true),
	}

	name := getEnv("TZ_NAME", "Asia/Ho_Chi_Minh")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("unknown TZ_NAME %q, falling back to local time: %v", name, err)
		loc = time.Local
	}
	cfg.Location = loc
	return cfg
}

// Validate reports settings the server must not start without.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid boolean for %s: %s", key, v)
		return def
	}
	return b
}

func parseDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("invalid duration for %s: %s", key, v)
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
