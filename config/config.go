package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultEnv                  = "development"
	DefaultPort                 = "8080"
	DefaultAccessTokenExpiryMin = 1440
	DefaultSMTPHost             = "smtp.gmail.com"
	DefaultSMTPPort             = 587
	DefaultEmailFrom            = "noreply@agroclima.com"
	DefaultLogLevel             = "info"
)

type Config struct {
	Env             string
	Port            string
	DBURL           string
	SecretKey       string
	AccessExpiryMin int

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	EmailFrom    string
	EmailDevMode bool

	LogLevel string
}

func Load() *Config {
	env := getEnv("ENV", DefaultEnv)
	loadEnvFile(env)

	return &Config{
		Env:             env,
		Port:            getEnv("PORT", DefaultPort),
		DBURL:           mustGetEnv("DB_URL"),
		SecretKey:       mustGetEnv("SECRET_KEY"),
		AccessExpiryMin: getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		SMTPHost:        getEnv("SMTP_HOST", DefaultSMTPHost),
		SMTPPort:        getEnvAsInt("SMTP_PORT", DefaultSMTPPort),
		SMTPUser:        getEnv("SMTP_USER", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		EmailFrom:       getEnv("EMAIL_FROM", DefaultEmailFrom),
		EmailDevMode:    getEnvAsBool("EMAIL_DEV_MODE", true),
		LogLevel:        getEnv("LOG_LEVEL", DefaultLogLevel),
	}
}

// loadEnvFile reads config/.env.dev or config/.env.prod depending on ENV.
// godotenv never overrides variables already present in the environment, so
// real env vars always win over file values.
func loadEnvFile(env string) {
	name := ".env.dev"
	if env == "production" {
		name = ".env.prod"
	}
	_ = godotenv.Load(filepath.Join("config", name))
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}
