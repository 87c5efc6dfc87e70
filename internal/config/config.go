package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Airtable    AirtableConfig
	N8N         N8NConfig
	Stripe      StripeConfig
	Email       EmailConfig
	Newsletter  NewsletterConfig
	LogLevel    string
}

type AirtableConfig struct {
	BaseID        string
	APIKey        string
	CustomerTable string
	ProductTable  string
}

type N8NConfig struct {
	WebhookURL string
}

type StripeConfig struct {
	SecretKey string
}

type EmailConfig struct {
	AdminEmail   string
	SupportEmail string
}

type NewsletterConfig struct {
	WelcomeDiscount   int
	WelcomeCodePrefix string
	DoubleOptIn       bool
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("AIRTABLE_CUSTOMER_TABLE", "Customers")
	viper.SetDefault("AIRTABLE_PRODUCT_TABLE", "Products")
	viper.SetDefault("WELCOME_DISCOUNT", 15)
	viper.SetDefault("WELCOME_CODE_PREFIX", "WELCOME")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Airtable: AirtableConfig{
			BaseID:        getEnvOrViper("AIRTABLE_BASE_ID", ""),
			APIKey:        getEnvOrViper("AIRTABLE_API_KEY", ""),
			CustomerTable: getEnvOrViper("AIRTABLE_CUSTOMER_TABLE", "Customers"),
			ProductTable:  getEnvOrViper("AIRTABLE_PRODUCT_TABLE", "Products"),
		},
		N8N: N8NConfig{
			WebhookURL: getEnvOrViper("N8N_WEBHOOK_URL", ""),
		},
		Stripe: StripeConfig{
			SecretKey: getEnvOrViper("STRIPE_SECRET_KEY", ""),
		},
		Email: EmailConfig{
			AdminEmail:   getEnvOrViper("ADMIN_EMAIL", "admin@dressforpleasure.com"),
			SupportEmail: getEnvOrViper("SUPPORT_EMAIL", "support@dressforpleasure.com"),
		},
		Newsletter: NewsletterConfig{
			WelcomeDiscount:   viper.GetInt("WELCOME_DISCOUNT"),
			WelcomeCodePrefix: getEnvOrViper("WELCOME_CODE_PREFIX", "WELCOME"),
			DoubleOptIn:       getEnvOrViper("DOUBLE_OPT_IN", "false") == "true",
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.N8N.WebhookURL == "" {
		return nil, fmt.Errorf("N8N_WEBHOOK_URL is required")
	}
	if cfg.Airtable.BaseID == "" {
		return nil, fmt.Errorf("AIRTABLE_BASE_ID is required")
	}
	if cfg.Airtable.APIKey == "" {
		return nil, fmt.Errorf("AIRTABLE_API_KEY is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
