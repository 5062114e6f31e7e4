package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	ModeWebhook = "webhook"
	ModePolling = "polling"

	BackendSheets   = "sheets"
	BackendSupabase = "supabase"
)

// Config holds everything the process reads from the environment.
type Config struct {
	BotToken string
	Port     string
	Mode     string
	LogLevel string

	LedgerBackend     string
	LedgerCredentials string
	SpreadsheetID     string
	WorksheetName     string

	SupabaseURL   string
	SupabaseKey   string
	SupabaseTable string

	AppendTimeout time.Duration
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (*Config, error) {
	// .env is optional; deployments pass the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:          os.Getenv("BOT_TOKEN"),
		Port:              getEnv("PORT", "10000"),
		Mode:              getEnv("MODE", ModeWebhook),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LedgerBackend:     getEnv("LEDGER_BACKEND", BackendSheets),
		LedgerCredentials: os.Getenv("LEDGER_CREDENTIALS"),
		SpreadsheetID:     os.Getenv("SPREADSHEET_ID"),
		WorksheetName:     getEnv("WORKSHEET_NAME", "unload_TG"),
		SupabaseURL:       os.Getenv("SUPABASE_URL"),
		SupabaseKey:       os.Getenv("SUPABASE_KEY"),
		SupabaseTable:     getEnv("SUPABASE_TABLE", "ledger"),
	}

	timeout, err := time.ParseDuration(getEnv("APPEND_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("parsing APPEND_TIMEOUT: %w", err)
	}
	cfg.AppendTimeout = timeout

	if cfg.BotToken == "" {
		return nil, errors.New("BOT_TOKEN is not set")
	}

	switch cfg.Mode {
	case ModeWebhook, ModePolling:
	default:
		return nil, fmt.Errorf("unknown MODE %q", cfg.Mode)
	}

	switch cfg.LedgerBackend {
	case BackendSheets:
		if cfg.LedgerCredentials == "" {
			return nil, errors.New("LEDGER_CREDENTIALS is not set")
		}
		if cfg.SpreadsheetID == "" {
			return nil, errors.New("SPREADSHEET_ID is not set")
		}
	case BackendSupabase:
		if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
			return nil, errors.New("SUPABASE_URL and SUPABASE_KEY must be set")
		}
	default:
		return nil, fmt.Errorf("unknown LEDGER_BACKEND %q", cfg.LedgerBackend)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
