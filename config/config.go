package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// Mail provider: "smtp" (default) or "resend"
	MailProvider string
	// SMTP Configuration (Gmail by default)
	SMTPHost  string
	SMTPPort  string
	EmailUser string
	EmailPass string
	// Resend Configuration
	ResendAPIKey string
	// Contact form behaviour
	StrictValidation bool
	// HTTP surface
	AllowedOrigins  []string
	StaticDir       string
	ShutdownTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; platform env vars win in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		// Mail Configuration
		MailProvider: strings.ToLower(getEnv("MAIL_PROVIDER", "smtp")),
		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		EmailUser:    getEnv("EMAIL_USER", ""),
		EmailPass:    getEnv("EMAIL_PASS", ""),
		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		// Contact form
		StrictValidation: getEnvBool("CONTACT_STRICT_VALIDATION", false),
		// HTTP
		AllowedOrigins:  getEnvList("ALLOWED_ORIGINS"),
		StaticDir:       strings.TrimRight(getEnv("STATIC_DIR", ""), "/"),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 5)) * time.Second,
	}

	// Missing credentials are not fatal: every dispatch fails instead
	if cfg.EmailUser == "" {
		log.Println("WARNING: EMAIL_USER is missing. Contact form submissions will fail.")
	}
	if cfg.MailProvider == "smtp" && cfg.EmailPass == "" {
		log.Println("WARNING: EMAIL_PASS is missing. Contact form submissions will fail.")
	}
	if cfg.MailProvider == "resend" && cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY is missing. Contact form submissions will fail.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks and trailing slashes
func getEnvList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimRight(strings.TrimSpace(item), "/")
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
