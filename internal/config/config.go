package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	AppEnv string

	MongoURI string
	MongoDB  string

	// Firebase Admin credentials file plus the web API key used by the
	// identitytoolkit password sign-in endpoint.
	FirebaseServiceAccountPath string
	FirebaseAPIKey             string

	FrontendURL string

	// SMTP settings for the reset-code mailer. When Host is empty the
	// code is logged instead of sent.
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:                       getEnv("PORT", "5000"),
		AppEnv:                     getEnv("APP_ENV", "development"),
		MongoURI:                   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:                    getEnv("MONGO_DB", "safetravel"),
		FirebaseServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", "serviceAccount.json"),
		FirebaseAPIKey:             getEnv("FIREBASE_API_KEY", ""),
		FrontendURL:                getEnv("FRONTEND_URL", "http://localhost:3000"),
		SMTPHost:                   getEnv("SMTP_HOST", ""),
		SMTPPort:                   getEnv("SMTP_PORT", "587"),
		SMTPUsername:               getEnv("SMTP_USERNAME", ""),
		SMTPPassword:               getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:                   getEnv("SMTP_FROM", "no-reply@safetravel.app"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
