package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Stripe   StripeConfig
	Keys     APIKeys
	Booking  BookingConfig
	Chatbot  ChatbotConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JwtSecret          string
	EmailTopic         string
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

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
	SuccessURL    string
	CancelURL     string
}

type APIKeys struct {
	GoogleGemini string
}

// BookingConfig holds the tunables of the booking lifecycle.
type BookingConfig struct {
	// ComplaintEligibilityWindow is how long a paid meeting may stay Pending
	// before the mentee is allowed to file a complaint about it.
	ComplaintEligibilityWindow time.Duration
	SlotHoldTTL                time.Duration
	BalanceRetryDelay          time.Duration
}

type ChatbotConfig struct {
	BaseURL       string
	Model         string
	MaxToolRounds int
	SessionTTL    time.Duration
}

// TracingConfig controls the OTLP trace exporter. Tracing is off unless
// OTEL_ENABLED is true.
type TracingConfig struct {
	Enabled     bool
	ServiceName string
	Endpoint    string
	Insecure    bool
	SampleRatio float64
	Environment string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
			EmailTopic:         getEnv("EMAIL_TOPIC_NAME", "SEND_EMAIL"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Mentoria <no-reply@mentoria.app>"),
		},
		Stripe: StripeConfig{
			SecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
			WebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
			Currency:      getEnv("STRIPE_CURRENCY", "usd"),
			SuccessURL:    getEnv("STRIPE_SUCCESS_URL", "http://localhost:5173/payment/success?session_id={CHECKOUT_SESSION_ID}"),
			CancelURL:     getEnv("STRIPE_CANCEL_URL", "http://localhost:5173/payment/cancel"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Booking: BookingConfig{
			ComplaintEligibilityWindow: getEnvAsDuration("COMPLAINT_ELIGIBILITY_WINDOW", time.Minute),
			// Stripe rejects checkout sessions expiring in less than 30 minutes
			// after it receives the request.
			SlotHoldTTL:       getEnvAsDuration("SLOT_HOLD_TTL", 31*time.Minute),
			BalanceRetryDelay: getEnvAsDuration("STRIPE_BALANCE_RETRY_DELAY", 2*time.Second),
		},
		Chatbot: ChatbotConfig{
			BaseURL:       getEnv("GEMINI_OPENAI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
			Model:         getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			MaxToolRounds: getEnvAsInt("CHATBOT_MAX_TOOL_ROUNDS", 5),
			SessionTTL:    getEnvAsDuration("CHATBOT_SESSION_TTL", time.Hour),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "mentoria-be"),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			Insecure:    getEnvAsBool("OTEL_EXPORTER_OTLP_INSECURE", true),
			SampleRatio: getEnvAsFloat("OTEL_TRACES_SAMPLE_RATIO", 1),
			Environment: getEnv("GO_ENV", "development"),
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
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

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
