// Package config loads the application configuration from environment
// variables with sensible defaults.
package config

import "github.com/spf13/viper"

// Config holds all runtime configuration.
type Config struct {
	AppPort   string
	JWTSecret string

	// Key-value store backing the cart and session: memory, sqlite or redis.
	StoreDriver string
	StorePath   string // sqlite file path
	RedisAddr   string

	// RabbitMQ broker for order events; empty means events go to the log.
	AMQPURL string

	// Backend endpoint placeholders carried over from the original client
	// configuration. Read but deliberately unused: no real backend exists.
	MedusaBackendURL string
	SupabaseURL      string
	SupabaseAnonKey  string
}

// Load reads configuration from the environment.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("JWT_SECRET", "renewrubber_dev_secret")
	viper.SetDefault("STORE_DRIVER", "memory")
	viper.SetDefault("STORE_PATH", "renewrubber.db")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("MEDUSA_BACKEND_URL", "http://localhost:9000")
	viper.SetDefault("SUPABASE_URL", "https://your-project.supabase.co")
	viper.SetDefault("SUPABASE_ANON_KEY", "your-anon-key")
	viper.AutomaticEnv()

	return &Config{
		AppPort:          viper.GetString("APP_PORT"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		StoreDriver:      viper.GetString("STORE_DRIVER"),
		StorePath:        viper.GetString("STORE_PATH"),
		RedisAddr:        viper.GetString("REDIS_ADDR"),
		AMQPURL:          viper.GetString("AMQP_URL"),
		MedusaBackendURL: viper.GetString("MEDUSA_BACKEND_URL"),
		SupabaseURL:      viper.GetString("SUPABASE_URL"),
		SupabaseAnonKey:  viper.GetString("SUPABASE_ANON_KEY"),
	}
}
