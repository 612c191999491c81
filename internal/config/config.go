package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Catalog store backends.
const (
	BackendSupabase = "supabase"
	BackendMongoDB  = "mongodb"
	BackendSheets   = "sheets"
)

// Chat completion providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Supabase SupabaseConfig
	MongoDB  MongoDBConfig
	Sheets   SheetsConfig
	AI       AIConfig
	Weather  WeatherConfig
	Purchase PurchaseConfig
	Session  SessionConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port     string
	LogLevel string
}

// CatalogConfig selects where products and calendar entries are read from.
type CatalogConfig struct {
	Backend string
}

// SupabaseConfig points at the hosted PostgREST endpoint.
type SupabaseConfig struct {
	URL     string
	AnonKey string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// SheetsConfig contains configuration required to interact with Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	ProductsRange   string
	CalendarRange   string
}

// AIConfig holds settings for the chat completion provider.
type AIConfig struct {
	Provider string
	BaseURL  string
	APIKey   string
	Model    string
}

// Enabled reports whether an API key is configured.
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

// WeatherConfig holds the forecast endpoint and the refresh cadence.
type WeatherConfig struct {
	BaseURL         string
	Latitude        float64
	Longitude       float64
	Timezone        string
	RefreshSchedule string
	CacheTTL        time.Duration
}

// SessionConfig bounds how long idle visitor state is kept.
type SessionConfig struct {
	MaxIdle       time.Duration
	SweepSchedule string
}

// PurchaseConfig holds the messaging destination and the transfer details.
type PurchaseConfig struct {
	MessagingHost  string
	WhatsAppNumber string
	BankName       string
	AccountNumber  string
	AccountName    string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the
		// environment directly.
		_ = godotenv.Load()
	}

	latitude, err := getenvFloat("WEATHER_LATITUDE", 9.0765)
	if err != nil {
		return nil, err
	}
	longitude, err := getenvFloat("WEATHER_LONGITUDE", 7.3986)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getenvDuration("WEATHER_CACHE_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}
	sessionMaxIdle, err := getenvDuration("SESSION_MAX_IDLE", 2*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:     getenvWithDefault("APP_PORT", "8080"),
			LogLevel: getenvWithDefault("LOG_LEVEL", "info"),
		},
		Catalog: CatalogConfig{
			Backend: strings.ToLower(getenvWithDefault("CATALOG_BACKEND", BackendSupabase)),
		},
		Supabase: SupabaseConfig{
			URL:     os.Getenv("SUPABASE_URL"),
			AnonKey: os.Getenv("SUPABASE_ANON_KEY"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "olupo"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
			ProductsRange:   getenvWithDefault("SHEETS_PRODUCTS_RANGE", "Products!A2:I"),
			CalendarRange:   getenvWithDefault("SHEETS_CALENDAR_RANGE", "Calendar!A2:F"),
		},
		AI: AIConfig{
			Provider: strings.ToLower(getenvWithDefault("AI_PROVIDER", ProviderOpenAI)),
			BaseURL:  os.Getenv("AI_BASE_URL"),
			APIKey:   os.Getenv("AI_API_KEY"),
			Model:    os.Getenv("AI_MODEL"),
		},
		Weather: WeatherConfig{
			BaseURL:         getenvWithDefault("WEATHER_BASE_URL", "https://api.open-meteo.com/v1"),
			Latitude:        latitude,
			Longitude:       longitude,
			Timezone:        getenvWithDefault("WEATHER_TIMEZONE", "Africa/Lagos"),
			RefreshSchedule: getenvWithDefault("WEATHER_REFRESH_SCHEDULE", "@every 15m"),
			CacheTTL:        cacheTTL,
		},
		Purchase: PurchaseConfig{
			MessagingHost:  getenvWithDefault("MESSAGING_HOST", "wa.me"),
			WhatsAppNumber: getenvWithDefault("WHATSAPP_NUMBER", "+2348036226669"),
			BankName:       getenvWithDefault("BANK_NAME", "First Bank of Nigeria"),
			AccountNumber:  getenvWithDefault("BANK_ACCOUNT_NUMBER", "0123456789"),
			AccountName:    getenvWithDefault("BANK_ACCOUNT_NAME", "Olupo Agriculture"),
		},
		Session: SessionConfig{
			MaxIdle:       sessionMaxIdle,
			SweepSchedule: getenvWithDefault("SESSION_SWEEP_SCHEDULE", "@every 10m"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.Catalog.Backend {
	case BackendSupabase:
		switch {
		case c.Supabase.URL == "":
			return errors.New("SUPABASE_URL must be provided")
		case c.Supabase.AnonKey == "":
			return errors.New("SUPABASE_ANON_KEY must be provided")
		}
	case BackendMongoDB:
		switch {
		case c.MongoDB.URI == "":
			return errors.New("MONGODB_URI must be provided")
		case c.MongoDB.DBName == "":
			return errors.New("MONGODB_DB_NAME must not be empty")
		}
	case BackendSheets:
		switch {
		case c.Sheets.CredentialsPath == "":
			return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided")
		case c.Sheets.SpreadsheetID == "":
			return errors.New("GOOGLE_SHEET_DATABASE_ID must be provided")
		}
	default:
		return fmt.Errorf("CATALOG_BACKEND %q is not supported", c.Catalog.Backend)
	}

	switch c.AI.Provider {
	case ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("AI_PROVIDER %q is not supported", c.AI.Provider)
	}

	if c.Weather.RefreshSchedule == "" {
		return errors.New("WEATHER_REFRESH_SCHEDULE must not be empty")
	}

	if c.Session.SweepSchedule == "" {
		return errors.New("SESSION_SWEEP_SCHEDULE must not be empty")
	}

	if c.Session.MaxIdle <= 0 {
		return errors.New("SESSION_MAX_IDLE must be positive")
	}

	if c.Purchase.WhatsAppNumber == "" {
		return errors.New("WHATSAPP_NUMBER must not be empty")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return value, nil
}

func getenvDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return value, nil
}
