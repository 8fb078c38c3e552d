package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr   string
	GinMode   string
	DBUser    string
	DBPass    string
	DBHost    string
	DBName    string
	JWTSecret string
}

func LoadEnv() Env {
	// .env es opcional; en produccion todo llega por environment.
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	return Env{
		AppAddr:   appAddr,
		GinMode:   strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:    envOr("DB_USER", "root"),
		DBPass:    os.Getenv("DB_PASS"),
		DBHost:    envOr("DB_HOST", "127.0.0.1:3306"),
		DBName:    envOr("DB_NAME", "agencia_viajes"),
		JWTSecret: envOr("JWT_SECRET", "super-secret-key-change-me"),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
