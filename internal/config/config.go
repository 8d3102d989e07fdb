package config

import (
	"os"
	"strconv"
	"strings"
)

// ServiceName tags log lines and health responses.
const ServiceName = "hoth-storefront"

// Version reported by /api/health.
const Version = "1.0.0"

// Config holds environment-driven configuration. It is built once at
// startup and handed to the pieces that need it; nothing reads the
// environment after Load returns.
type Config struct {
	NodeEnv    string
	Port       int
	Host       string
	Database   DatabaseConfig
	JWT        JWTConfig
	CORS       CORSConfig
	Management ManagementConfig
	RailwayEnv string
	StaticDir  string
}

// DatabaseConfig records the connection string and its inferred engine.
// No handler opens a connection; the values document intended scope.
type DatabaseConfig struct {
	URL  string
	Type string // "postgresql" or "sqlite"
}

// JWTConfig carries signing parameters. Unused by any handler while
// authentication returns placeholder tokens.
type JWTConfig struct {
	Secret    string
	ExpiresIn string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// ManagementConfig points at the external management API. The server only
// uses the URL for its Content-Security-Policy allow entry; the frontend
// is the sole caller.
type ManagementConfig struct {
	APIURL string
	APIKey string
}

// Load reads configuration from environment variables. Missing values fall
// back to defaults; there is no validation failure path.
func Load() Config {
	dbURL := getenvDefault("DATABASE_URL", os.Getenv("STOREFRONT_DATABASE_URL"))
	dbType := "sqlite"
	if strings.Contains(dbURL, "postgresql") {
		dbType = "postgresql"
	}

	return Config{
		NodeEnv: getenvDefault("NODE_ENV", "development"),
		Port:    getenvIntDefault("PORT", getenvIntDefault("STOREFRONT_PORT", 8002)),
		Host:    getenvDefault("HOST", "0.0.0.0"),
		Database: DatabaseConfig{
			URL:  dbURL,
			Type: dbType,
		},
		JWT: JWTConfig{
			Secret:    getenvDefault("STOREFRONT_JWT_SECRET", "customer-jwt-secret"),
			ExpiresIn: getenvDefault("JWT_EXPIRES_IN", "24h"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(os.Getenv("CORS_ORIGINS")),
		},
		Management: ManagementConfig{
			APIURL: getenvDefault("MANAGEMENT_API_URL", "http://localhost:8001"),
			APIKey: os.Getenv("MANAGEMENT_API_KEY"),
		},
		RailwayEnv: os.Getenv("RAILWAY_ENVIRONMENT"),
		StaticDir:  getenvDefault("STOREFRONT_STATIC_DIR", "frontend/dist"),
	}
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return []string{"http://localhost:3000", "http://localhost:3001"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
