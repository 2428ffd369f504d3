package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	API       APIConfig
	Session   SessionConfig
	Store     StoreConfig
	Printer   PrinterConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// APIConfig addresses the central store server
type APIConfig struct {
	BaseURL           string
	Secret            string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// SessionConfig controls how cashier session tokens are read
type SessionConfig struct {
	Secret string
	// CartIdleTTL drops a session's cart after this long without use
	CartIdleTTL time.Duration
}

// StoreConfig describes this till
type StoreConfig struct {
	Name             string
	DefaultBranch    string
	DefaultPageLimit int
}

type PrinterConfig struct {
	Type    string
	USBPath string
	Address string
	Width   int
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "kasir-gateway")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8081")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	viper.SetDefault("API_SECRET", "")
	viper.SetDefault("API_TIMEOUT_SECONDS", 15)
	viper.SetDefault("API_RATE_LIMIT_RPS", 10)
	viper.SetDefault("API_RATE_LIMIT_BURST", 20)
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("SESSION_CART_IDLE_MINUTES", 720)
	viper.SetDefault("STORE_NAME", "STRUK PEMBAYARAN")
	viper.SetDefault("DEFAULT_BRANCH", "")
	viper.SetDefault("DEFAULT_PAGE_LIMIT", 10)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_WIDTH", 32)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 60)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		API: APIConfig{
			BaseURL:           viper.GetString("API_BASE_URL"),
			Secret:            viper.GetString("API_SECRET"),
			Timeout:           time.Duration(viper.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
			RequestsPerSecond: viper.GetFloat64("API_RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("API_RATE_LIMIT_BURST"),
		},
		Session: SessionConfig{
			Secret:      viper.GetString("SESSION_SECRET"),
			CartIdleTTL: time.Duration(viper.GetInt("SESSION_CART_IDLE_MINUTES")) * time.Minute,
		},
		Store: StoreConfig{
			Name:             viper.GetString("STORE_NAME"),
			DefaultBranch:    viper.GetString("DEFAULT_BRANCH"),
			DefaultPageLimit: viper.GetInt("DEFAULT_PAGE_LIMIT"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
			Width:   viper.GetInt("PRINTER_WIDTH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

// IsDevelopment reports whether the app runs in the development environment
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(strings.TrimSpace(c.App.Env), "development")
}

// Validate rejects configurations the gateway must not start with. Outside
// development, session tokens have to be verified.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.Secret) == "" {
		return errors.New("API_SECRET is required")
	}
	if !c.IsDevelopment() && strings.TrimSpace(c.Session.Secret) == "" {
		return errors.New("SESSION_SECRET is required when APP_ENV is not development")
	}
	return nil
}
