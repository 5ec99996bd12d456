package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// Core configuration (always required)
	DiscordBotToken string
	DatabaseURL     string
	DatabaseSchema  string

	// Optional with defaults
	Port               string
	CORSAllowedOrigins string
	Environment        string

	// Optional alerting configuration
	SlackAlertWebhookURL string
	ServerLogsURL        string
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	// Core required configuration - the process must not come up without its
	// bot token and store connection.
	discordBotToken, err := getEnvRequired("DISCORD_BOT_TOKEN")
	if err != nil {
		return nil, err
	}

	databaseURL, err := getEnvRequired("DB_URL")
	if err != nil {
		return nil, err
	}

	databaseSchema, err := getEnvRequired("DB_SCHEMA")
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		DiscordBotToken: discordBotToken,
		DatabaseURL:     databaseURL,
		DatabaseSchema:  databaseSchema,

		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),

		SlackAlertWebhookURL: getEnvWithDefault("SLACK_ALERT_WEBHOOK_URL", ""),
		ServerLogsURL:        getEnvWithDefault("SERVER_LOGS_URL", ""),
	}, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
