package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// clearEnv deja vacías las claves que lee Load para que el entorno del
// runner no se filtre en los tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME", "STORAGE_DRIVER", "DB_DSN",
		"DATA_FILE", "TIMEZONE", "CURRENCY_PREFIX", "DIGEST_CRON",
		"CORS_ALLOWED_ORIGINS", "READ_TIMEOUT", "WRITE_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, DriverMemory, cfg.Storage.Driver)
	require.Equal(t, "A$", cfg.CurrencyPrefix)
	require.Equal(t, 5*time.Second, cfg.ReadTimeout)
	require.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
currency_prefix: "¥"
timezone: Asia/Shanghai
storage:
  driver: file
  data_file: /var/lib/ledger.json
read_timeout: 7s
cors_allowed_origins: ["http://localhost:5173"]
`), 0o600))

	t.Setenv("PORT", "9100")
	t.Setenv("WRITE_TIMEOUT", "30s")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9100", cfg.HTTPAddr(), "env wins over file")
	require.Equal(t, "¥", cfg.CurrencyPrefix)
	require.Equal(t, DriverFile, cfg.Storage.Driver)
	require.Equal(t, "/var/lib/ledger.json", cfg.Storage.DataFile)
	require.Equal(t, 7*time.Second, cfg.ReadTimeout)
	require.Equal(t, 30*time.Second, cfg.WriteTimeout)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)

	loc, err := cfg.Location()
	require.NoError(t, err)
	require.Equal(t, "Asia/Shanghai", loc.String())
}

func TestLoad_Validation(t *testing.T) {
	clearEnv(t)

	t.Setenv("STORAGE_DRIVER", "postgres")
	_, err := Load("")
	require.ErrorContains(t, err, "DB_DSN")

	t.Setenv("STORAGE_DRIVER", "sqlite")
	_, err = Load("")
	require.ErrorContains(t, err, "unknown storage driver")

	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("DIGEST_CRON", "every day")
	_, err = Load("")
	require.ErrorContains(t, err, "digest cron")

	t.Setenv("DIGEST_CRON", "off")
	cfg, err := Load("")
	require.NoError(t, err)
	require.Empty(t, cfg.DigestCron)

	t.Setenv("READ_TIMEOUT", "soon")
	_, err = Load("")
	require.ErrorContains(t, err, "READ_TIMEOUT")
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [1,2"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
