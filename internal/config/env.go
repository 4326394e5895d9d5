package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr    string
	GinMode    string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	// DatabaseDSN overrides the individual DB_* fields when set
	// (useful for hosted databases that hand out a single DSN).
	DatabaseDSN string
	JWTSecret   string
	CORSAllowed string
}

// CORSOrigins splits CORS_ALLOWED_ORIGINS, falling back to the local dev
// frontends when unset.
func (e Env) CORSOrigins() []string {
	raw := strings.TrimSpace(e.CORSAllowed)
	if raw == "" {
		return []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}
	out := []string{}
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func LoadEnv() Env {
	return Env{
		AppAddr:     getenv("APP_ADDR", ":8080"),
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:      getenv("DB_USER", "root"),
		DBPassword:  getenv("DB_PASSWORD", ""),
		DBHost:      getenv("DB_HOST", "127.0.0.1"),
		DBPort:      getenv("DB_PORT", "3306"),
		DBName:      getenv("DB_NAME", "pasajes_db"),
		DatabaseDSN: strings.TrimSpace(os.Getenv("DATABASE_DSN")),
		JWTSecret:   getenv("JWT_SECRET", "cambia-esta-clave"),
		CORSAllowed: strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
