package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MigrationsPath string

	// Hosted Postgres convenience:
	// - DATABASE_URL: runtime connection (often PgBouncer/pooler)
	// - DIRECT_URL: direct connection for migrations
	DatabaseURL string
	DirectURL   string

	DB DBConfig

	// SessionSecret signs agent session tokens (HS256).
	SessionSecret string
	// SessionTTLMinutes is how long an issued session token stays valid.
	SessionTTLMinutes int

	// SlipDir is the local directory payment slips are stored in.
	SlipDir string
	// SlipURLSecret signs expiring slip download URLs.
	SlipURLSecret string
	// SlipURLTTLMinutes is the signed-URL lifetime.
	SlipURLTTLMinutes int

	// VerifierSecret authenticates callbacks from the external slip
	// verification service (HMAC over the request body).
	VerifierSecret string

	// AllowedOrigins is a comma-separated allowlist of origins allowed to call
	// the API from a browser. Example:
	//   https://desk.yourapp.com,http://localhost:5173
	AllowedOrigins []string

	MetricsNamespace string
}

type DBConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

func Load() Config {
	// Convenience for local dev: load variables from .env if present.
	// In production, rely on real environment variables.
	_ = godotenv.Load()

	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			httpAddr = ":" + port
		} else {
			httpAddr = ":8081"
		}
	}

	return Config{
		AppEnv:         env("APP_ENV", "dev"),
		HTTPAddr:       httpAddr,
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DirectURL:      os.Getenv("DIRECT_URL"),
		DB: DBConfig{
			Host:     env("DB_HOST", "localhost"),
			Port:     env("DB_PORT", "5432"),
			Name:     env("DB_NAME", "agencydesk"),
			User:     env("DB_USER", "agencydesk"),
			Password: env("DB_PASSWORD", "agencydesk"),
			SSLMode:  env("DB_SSLMODE", "disable"),
		},

		SessionSecret:     env("SESSION_SECRET", "dev-session-secret"),
		SessionTTLMinutes: envInt("SESSION_TTL_MINUTES", 12*60),

		SlipDir:           env("SLIP_DIR", "data/slips"),
		SlipURLSecret:     env("SLIP_URL_SECRET", "dev-slip-secret"),
		SlipURLTTLMinutes: envInt("SLIP_URL_TTL_MINUTES", 15),

		VerifierSecret: os.Getenv("VERIFIER_SECRET"),

		AllowedOrigins: envList("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:4173"),

		MetricsNamespace: env("METRICS_NAMESPACE", "agencydesk"),
	}
}

func env(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envList(key, fallbackCSV string) []string {
	v := os.Getenv(key)
	if v == "" {
		v = fallbackCSV
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
