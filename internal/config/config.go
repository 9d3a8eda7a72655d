package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // la zona se resuelve aunque el host no tenga tzdata

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

type StorageConfig struct {
	// Driver: memory | file | postgres
	Driver   string `yaml:"driver"`
	DSN      string `yaml:"dsn"`
	DataFile string `yaml:"data_file"`
}

type Config struct {
	Port      string `yaml:"port"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	AppName   string `yaml:"app_name"`

	Storage StorageConfig `yaml:"storage"`

	// Timezone define "hoy" para el dashboard y el mes por defecto del calendario.
	Timezone       string `yaml:"timezone"`
	CurrencyPrefix string `yaml:"currency_prefix"`

	// DigestCron vacío desactiva el digest mensual.
	DigestCron string `yaml:"digest_cron"`

	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

func Default() *Config {
	return &Config{
		Port:      "8080",
		LogLevel:  "info",
		LogFormat: "text",
		AppName:   "pet-boarding-ledger",
		Storage: StorageConfig{
			Driver:   DriverMemory,
			DataFile: "data/ledger.json",
		},
		Timezone:           "Australia/Sydney",
		CurrencyPrefix:     "A$",
		DigestCron:         "0 8 * * *",
		CORSAllowedOrigins: []string{"*"},
		ReadTimeout:        5 * time.Second,
		WriteTimeout:       10 * time.Second,
	}
}

// Load arma la config en este orden (cada paso pisa al anterior):
//  1. defaults
//  2. archivo YAML en path (opcional; si no existe se ignora)
//  3. variables de entorno, cargando antes .env si existe
//
// Después normaliza y valida.
func Load(path string) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	// .env faltante es normal cuando todo viene del entorno.
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return err
	}

	setString(&c.Port, k.String("PORT"))
	setString(&c.LogLevel, k.String("LOG_LEVEL"))
	setString(&c.LogFormat, k.String("LOG_FORMAT"))
	setString(&c.AppName, k.String("APP_NAME"))
	setString(&c.Storage.Driver, k.String("STORAGE_DRIVER"))
	setString(&c.Storage.DSN, k.String("DB_DSN"))
	setString(&c.Storage.DataFile, k.String("DATA_FILE"))
	setString(&c.Timezone, k.String("TIMEZONE"))
	setString(&c.CurrencyPrefix, k.String("CURRENCY_PREFIX"))

	// DIGEST_CRON="off" desactiva el job desde el entorno.
	if v := strings.TrimSpace(k.String("DIGEST_CRON")); v != "" {
		if strings.EqualFold(v, "off") {
			c.DigestCron = ""
		} else {
			c.DigestCron = v
		}
	}

	if v := splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")); len(v) > 0 {
		c.CORSAllowedOrigins = v
	}

	var err error
	if c.ReadTimeout, err = parseDuration(k.String("READ_TIMEOUT"), c.ReadTimeout); err != nil {
		return fmt.Errorf("READ_TIMEOUT: %w", err)
	}
	if c.WriteTimeout, err = parseDuration(k.String("WRITE_TIMEOUT"), c.WriteTimeout); err != nil {
		return fmt.Errorf("WRITE_TIMEOUT: %w", err)
	}
	return nil
}

// Normalize completa valores vacíos con los defaults.
func (c *Config) Normalize() {
	def := Default()

	if strings.TrimSpace(c.Port) == "" {
		c.Port = def.Port
	}
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if c.Storage.Driver == "" {
		c.Storage.Driver = def.Storage.Driver
	}
	if strings.TrimSpace(c.Storage.DataFile) == "" {
		c.Storage.DataFile = def.Storage.DataFile
	}
	if strings.TrimSpace(c.Timezone) == "" {
		c.Timezone = def.Timezone
	}
	if strings.TrimSpace(c.CurrencyPrefix) == "" {
		c.CurrencyPrefix = def.CurrencyPrefix
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = def.ReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = def.WriteTimeout
	}
	if c.CORSAllowedOrigins == nil {
		c.CORSAllowedOrigins = def.CORSAllowedOrigins
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverFile:
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return errors.New("storage driver postgres requires DB_DSN")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}

	if c.DigestCron != "" {
		if _, err := cron.ParseStandard(c.DigestCron); err != nil {
			return fmt.Errorf("digest cron %q: %w", c.DigestCron, err)
		}
	}
	return nil
}

func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	return time.ParseDuration(value)
}
