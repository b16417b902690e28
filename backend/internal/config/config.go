package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port              string
	DatabaseURL       string
	JwtAccessSecret   string
	JwtRefreshSecret  string
	JwtAccessExpires  int
	JwtRefreshExpires int
	FrontendUrl       string
	SeedOnStart       bool
}

func Load() *Config {
	cfg := &Config{
		Port:              GetEnv("PORT", "8000"),
		DatabaseURL:       MustEnvStr("DATABASE_URL"),
		JwtAccessSecret:   MustEnvStr("JWT_ACCESS_SECRET"),
		JwtRefreshSecret:  MustEnvStr("JWT_REFRESH_SECRET"),
		JwtAccessExpires:  MustEnvInt("JWT_ACCESS_EXPIRES_MIN"),
		JwtRefreshExpires: MustEnvInt("JWT_REFRESH_EXPIRES_HOURS"),
		FrontendUrl:       GetEnv("FRONTEND_URL", "http://localhost:3000"),
		SeedOnStart:       GetEnv("SEED_ON_START", "true") == "true",
	}
	return cfg
}

func MustEnvStr(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("environment variable %s must be set", key))
	}
	return val
}
func MustEnvInt(key string) int {
	val := MustEnvStr(key)
	i, err := strconv.Atoi(val)
	if err != nil {
		panic(fmt.Sprintf("environment variable %s must be an integer", key))
	}
	return i
}
func GetEnv(key string, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}
