package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Automation AutomationConfig
	Chat       ChatConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AutomationConfig struct {
	// WebhookURL empty means publishing is disabled, not broken.
	WebhookURL string
	TopicName  string
}

type ChatConfig struct {
	// ReplyDelay keeps the "thinking" pause between the user message and
	// the assistant reply.
	ReplyDelay time.Duration
	// AutosaveDebounce is the quiet window before a journal draft persists.
	AutosaveDebounce time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Automation: AutomationConfig{
			WebhookURL: getEnv("AUTOMATION_WEBHOOK_URL", ""),
			TopicName:  getEnv("AUTOMATION_TOPIC_NAME", "AUTOMATION_EVENTS"),
		},
		Chat: ChatConfig{
			ReplyDelay:       time.Duration(getEnvAsInt("REPLY_DELAY_MS", 900)) * time.Millisecond,
			AutosaveDebounce: time.Duration(getEnvAsInt("AUTOSAVE_DEBOUNCE_MS", 2000)) * time.Millisecond,
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
