package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setSheetsEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "123456:TEST")
	t.Setenv("LEDGER_CREDENTIALS", `{"type":"service_account"}`)
	t.Setenv("SPREADSHEET_ID", "sheet-id")
}

func TestLoadConfigDefaults(t *testing.T) {
	setSheetsEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "10000", cfg.Port)
	require.Equal(t, ModeWebhook, cfg.Mode)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, BackendSheets, cfg.LedgerBackend)
	require.Equal(t, "unload_TG", cfg.WorksheetName)
	require.Equal(t, 10*time.Second, cfg.AppendTimeout)
}

func TestLoadConfigOverrides(t *testing.T) {
	setSheetsEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("MODE", ModePolling)
	t.Setenv("WORKSHEET_NAME", "ledger2025")
	t.Setenv("APPEND_TIMEOUT", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, ModePolling, cfg.Mode)
	require.Equal(t, "ledger2025", cfg.WorksheetName)
	require.Equal(t, 3*time.Second, cfg.AppendTimeout)
}

func TestLoadConfigMissingToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("LEDGER_CREDENTIALS", "{}")
	t.Setenv("SPREADSHEET_ID", "sheet-id")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigSheetsRequiresCredentials(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123456:TEST")
	t.Setenv("LEDGER_CREDENTIALS", "")
	t.Setenv("SPREADSHEET_ID", "")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigSupabaseBackend(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123456:TEST")
	t.Setenv("LEDGER_BACKEND", BackendSupabase)
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_KEY", "key")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, BackendSupabase, cfg.LedgerBackend)
	require.Equal(t, "ledger", cfg.SupabaseTable)
}

func TestLoadConfigUnknownBackend(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123456:TEST")
	t.Setenv("LEDGER_BACKEND", "filesystem")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigBadTimeout(t *testing.T) {
	setSheetsEnv(t)
	t.Setenv("APPEND_TIMEOUT", "soon")

	_, err := LoadConfig()
	require.Error(t, err)
}
