package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// App identity
	App AppConfig

	// Database (write-only conversation/clinic store)
	Database DatabaseConfig

	// WhatsApp Cloud API
	WhatsApp WhatsAppConfig

	// External collaborators
	ImageAPI ImageAPIConfig
	VoiceAPI VoiceAPIConfig

	// Session lifecycle
	Session SessionConfig
}

type AppConfig struct {
	Name             string
	MaxMessageLength int
}

type DatabaseConfig struct {
	URI      string
	Name     string
	Host     string
	Port     string
	Username string
	Password string

	// Connection pool settings
	MaxConnections int
	MinConnections int
	MaxIdleTime    time.Duration
}

type WhatsAppConfig struct {
	AccessToken   string
	PhoneNumberID string
	VerifyToken   string
	AppSecret     string
}

type ImageAPIConfig struct {
	APIKey   string
	ModelURL string
	Timeout  time.Duration
}

type VoiceAPIConfig struct {
	APIKey  string
	URL     string
	Timeout time.Duration
}

type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

var cfg *Config

// Load initializes the configuration
func Load() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg = &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		App: AppConfig{
			Name:             getEnv("APP_NAME", "SwasthyaGuide"),
			MaxMessageLength: getEnvAsInt("MAX_MESSAGE_LENGTH", 1600),
		},

		Database: DatabaseConfig{
			URI:      getEnv("DATABASE_URL", ""),
			Name:     getEnv("DB_NAME", "swasthyaguide"),
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "27017"),
			Username: getEnv("DB_USERNAME", ""),
			Password: getEnv("DB_PASSWORD", ""),

			MaxConnections: getEnvAsInt("DB_MAX_CONNECTIONS", 100),
			MinConnections: getEnvAsInt("DB_MIN_CONNECTIONS", 10),
			MaxIdleTime:    getEnvAsDuration("DB_MAX_IDLE_TIME", "30m"),
		},

		WhatsApp: WhatsAppConfig{
			AccessToken:   getEnv("WHATSAPP_ACCESS_TOKEN", ""),
			PhoneNumberID: getEnv("WHATSAPP_PHONE_NUMBER_ID", ""),
			VerifyToken:   getEnv("WHATSAPP_VERIFY_TOKEN", ""),
			AppSecret:     getEnv("WHATSAPP_APP_SECRET", ""),
		},

		ImageAPI: ImageAPIConfig{
			APIKey:   getEnv("HUGGINGFACE_API_KEY", ""),
			ModelURL: getEnv("IMAGE_MODEL_URL", "https://api-inference.huggingface.co/models/microsoft/resnet-50"),
			Timeout:  getEnvAsDuration("IMAGE_API_TIMEOUT", "30s"),
		},

		VoiceAPI: VoiceAPIConfig{
			APIKey:  getEnv("SPEECH_API_KEY", ""),
			URL:     getEnv("SPEECH_API_URL", ""),
			Timeout: getEnvAsDuration("SPEECH_API_TIMEOUT", "30s"),
		},

		Session: SessionConfig{
			TTL:           getEnvAsDuration("SESSION_TTL", "30m"),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", "5m"),
		},
	}

	// Validate configuration
	if err := validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return nil
}

// Get returns the loaded configuration
func Get() *Config {
	if cfg == nil {
		log.Fatal("Configuration not loaded. Call Load() first")
	}
	return cfg
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func validate() error {
	if cfg.Session.TTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}
	if cfg.Session.SweepInterval <= 0 {
		return fmt.Errorf("session sweep interval must be positive")
	}

	// WhatsApp credentials are optional for local development; warn instead
	// of failing so the REST and WebSocket channels still work.
	if cfg.WhatsApp.AccessToken == "" || cfg.WhatsApp.PhoneNumberID == "" {
		log.Println("WhatsApp credentials not set; webhook replies will fail until configured")
	}

	return nil
}

// HasDatabase reports whether a persistence backend is configured. The core
// runs fully in-memory without one; only the conversation log is skipped.
func (c *Config) HasDatabase() bool {
	return c.Database.URI != "" || c.Database.Host != ""
}

// BuildDatabaseURI constructs the database URI if not provided
func (c *Config) BuildDatabaseURI() string {
	if c.Database.URI != "" {
		return c.Database.URI
	}

	if c.Database.Username != "" && c.Database.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s",
			c.Database.Username,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.Name,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

// TrimToMaxLength truncates an outgoing message to the configured channel
// limit, keeping whole words where possible.
func (c *Config) TrimToMaxLength(message string) string {
	limit := c.App.MaxMessageLength
	if limit <= 0 || len(message) <= limit {
		return message
	}
	cut := message[:limit]
	if idx := strings.LastIndex(cut, " "); idx > limit/2 {
		cut = cut[:idx]
	}
	return cut
}
