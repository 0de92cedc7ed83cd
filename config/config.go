package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Stripe configuration.
	StripeSecretKey      string `mapstructure:"STRIPE_SECRET_KEY"`
	StripePublishableKey string `mapstructure:"STRIPE_PUBLISHABLE_KEY"`

	// Checkout configuration.
	PublicBaseURL     string `mapstructure:"PUBLIC_BASE_URL"`
	DefaultCurrency   string `mapstructure:"DEFAULT_CURRENCY"`
	BookingIDPrefix   string `mapstructure:"BOOKING_ID_PREFIX"`
	ShippingCountries string `mapstructure:"SHIPPING_COUNTRIES"`
	RoomImageURL      string `mapstructure:"ROOM_IMAGE_URL"`
	AddOnImageURL     string `mapstructure:"ADDON_IMAGE_URL"`
	AssetsDir         string `mapstructure:"ASSETS_DIR"`

	// Redis configuration for the webhook side-effect queue.
	RedisAddr           string `mapstructure:"REDIS_ADDR"`
	RedisPassword       string `mapstructure:"REDIS_PASSWORD"`
	RedisQueueDB        int    `mapstructure:"REDIS_QUEUE_DB"`
	WebhookQueueEnabled bool   `mapstructure:"WEBHOOK_QUEUE_ENABLED"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "3000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("STRIPE_PUBLISHABLE_KEY", "")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:3000")
	viper.SetDefault("DEFAULT_CURRENCY", "eur")
	viper.SetDefault("BOOKING_ID_PREFIX", "TDG")
	viper.SetDefault("SHIPPING_COUNTRIES", "GB,IE,US,DE,FR,ES,IT,NL")
	viper.SetDefault("ROOM_IMAGE_URL", "https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=500&h=300&fit=crop")
	viper.SetDefault("ADDON_IMAGE_URL", "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=500&h=300&fit=crop")
	viper.SetDefault("ASSETS_DIR", "./assets")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_QUEUE_DB", 3)
	viper.SetDefault("WEBHOOK_QUEUE_ENABLED", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// AllowedShippingCountries splits SHIPPING_COUNTRIES into upper-cased ISO codes.
func (c Config) AllowedShippingCountries() []string {
	var countries []string
	for _, code := range strings.Split(c.ShippingCountries, ",") {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			countries = append(countries, code)
		}
	}
	return countries
}
