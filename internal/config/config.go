package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	SMTP         SMTPConfig
	Ai           AIConfig
	Conversation ConversationConfig
	Severity     SeverityConfig
	Tracing      TracingConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	FailedLeadLogPath  string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	SessionTTLMinutes  int
	LeadNotifyEmail    string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type AIConfig struct {
	LLMProvider    string // "ollama" or "gemini"
	LLMModel       string
	OllamaBaseURL  string
	GeminiAPIKey   string
	TimeoutSeconds int
}

type ConversationConfig struct {
	ExtractTimeoutSeconds int
	ReplyTimeoutSeconds   int
	SaveTimeoutSeconds    int
}

type SeverityConfig struct {
	SevereThresholdPercent float64
	HighThresholdPercent   float64
}

type TracingConfig struct {
	Enabled      bool
	OTLPEndpoint string
	ServiceName  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			FailedLeadLogPath:  getEnv("FAILED_LEAD_LOG_PATH", "failed_leads.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			SessionTTLMinutes:  getEnvAsInt("SESSION_TTL_MINUTES", 120),
			LeadNotifyEmail:    getEnv("LEAD_NOTIFY_EMAIL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "PestAssess"),
		},
		Ai: AIConfig{
			LLMProvider:    getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:       getEnv("LLM_MODEL", "gemini-2.0-flash"),
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			GeminiAPIKey:   getEnv("GOOGLE_GEMINI_API_KEY", ""),
			TimeoutSeconds: getEnvAsInt("LLM_TIMEOUT_SECONDS", 60),
		},
		Conversation: ConversationConfig{
			ExtractTimeoutSeconds: getEnvAsInt("CONVERSATION_EXTRACT_TIMEOUT_SECONDS", 15),
			ReplyTimeoutSeconds:   getEnvAsInt("CONVERSATION_REPLY_TIMEOUT_SECONDS", 30),
			SaveTimeoutSeconds:    getEnvAsInt("LEAD_SAVE_TIMEOUT_SECONDS", 10),
		},
		Severity: SeverityConfig{
			SevereThresholdPercent: getEnvAsFloat("SEVERITY_SEVERE_THRESHOLD", 70),
			HighThresholdPercent:   getEnvAsFloat("SEVERITY_HIGH_THRESHOLD", 40),
		},
		Tracing: TracingConfig{
			Enabled:      getEnv("TRACING_ENABLED", "false") == "true",
			OTLPEndpoint: getEnv("OTLP_ENDPOINT", "localhost:4318"),
			ServiceName:  getEnv("TRACING_SERVICE_NAME", "pest-assess-be"),
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
