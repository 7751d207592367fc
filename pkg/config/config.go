package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env and
// optionally from file).
type Config struct {
	App    AppConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
	Report ReportConfig
	Notify NotifyConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// JWTConfig JWT settings.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ReportConfig branding used on the generated PDF documents.
type ReportConfig struct {
	CompanyName string // header printed on invoices and ticket reports
	Currency    string // currency label appended to amounts, e.g. "QR"
	AdminEmail  string // recipient of the new-entry notification mail
}

// NotifyConfig settings for the in-process notification relay.
type NotifyConfig struct {
	BufferSize int // per-subscriber channel buffer; events beyond it are dropped
}

// Load reads the configuration from environment variables (and optionally
// from file). Env vars win. Expected names: APP_ENV, HTTP_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env or config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignore error if absent

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignore error if absent

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "ledger-api"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "ledger-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Report: ReportConfig{
			CompanyName: getString(v, "REPORT_COMPANY_NAME", "AMIN TOUCH"),
			Currency:    getString(v, "REPORT_CURRENCY", "QR"),
			AdminEmail:  getString(v, "NOTIFY_ADMIN_EMAIL", "admin@amintouch.com"),
		},
		Notify: NotifyConfig{
			BufferSize: getInt(v, "NOTIFY_BUFFER_SIZE", 16),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
