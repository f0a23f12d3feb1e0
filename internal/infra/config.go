package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	TokenModeStatic = "static"
	TokenModeJWT    = "jwt"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	PortalPort         string
	APIBaseURL         string
	TokenMode          string
	JWTSecret          string
	JWTTTL             time.Duration
	CORSAllowedOrigins []string
	GeoIPDBPath        string
	DefaultLocale      string
	CookieSecure       bool
	SessionMaxAge      time.Duration
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	RateLimitPerMin    int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "3001"),
		PortalPort:         getEnv("PORTAL_PORT", "3000"),
		APIBaseURL:         strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:3001/api"), "/"),
		TokenMode:          strings.ToLower(getEnv("AUTH_TOKENS", TokenModeStatic)),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTTTL:             time.Minute * time.Duration(getEnvInt("JWT_TTL_MINUTES", 24*60)),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		GeoIPDBPath:        os.Getenv("GEOIP_DB_PATH"),
		DefaultLocale:      getEnv("DEFAULT_LOCALE", "en-US"),
		CookieSecure:       getEnvBool("COOKIE_SECURE", false),
		SessionMaxAge:      time.Hour * time.Duration(getEnvInt("SESSION_MAX_AGE_HOURS", 24*365)),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:    getEnvInt("RATE_LIMIT_PER_MINUTE", 0),
	}

	switch cfg.TokenMode {
	case TokenModeStatic:
	case TokenModeJWT:
		if cfg.JWTSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET is required when AUTH_TOKENS=jwt")
		}
	default:
		return nil, fmt.Errorf("AUTH_TOKENS must be %q or %q, got %q", TokenModeStatic, TokenModeJWT, cfg.TokenMode)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
