package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "your-secret-key"

type Config struct {
	HTTPAddr             string
	DatabaseURL          string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	JWTSecret       string
	StripeSecretKey string

	Production bool
	StaticDir  string
	LogLevel   string
}

// Load reads .env (if any) and the process environment once. The result is
// passed by value to everything that needs it.
func Load() (Config, error) {
	_ = godotenv.Load()

	env := getenv("APP_ENV", getenv("NODE_ENV", "development"))

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":"+getenv("PORT", "5000")),
		DatabaseURL:          getenv("DATABASE_URL", ""),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		StripeSecretKey:      getenv("STRIPE_SECRET_KEY", ""),
		Production:           strings.EqualFold(env, "production"),
		StaticDir:            getenv("STATIC_DIR", "client/build"),
		LogLevel:             getenv("LOG_LEVEL", "info"),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", "*"), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	cfg.JWTSecret = getenv("JWT_SECRET", "")
	if cfg.JWTSecret == "" {
		if cfg.Production {
			return Config{}, errors.New("missing env: JWT_SECRET")
		}
		cfg.JWTSecret = defaultJWTSecret
	}

	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
