package config

import (
	"github.com/spf13/viper"
)

// Config holds process configuration, read once at startup from the
// environment (optionally populated from a .env file by the caller).
type Config struct {
	Port        string
	DatabaseURL string
	ExportDir   string
	SeedDir     string
	LogLevel    string
}

// Load binds environment variables through viper and applies defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_URL", "planner.db")
	v.SetDefault("EXPORT_DIR", "out")
	v.SetDefault("SEED_DIR", "")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Port:        v.GetString("PORT"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		ExportDir:   v.GetString("EXPORT_DIR"),
		SeedDir:     v.GetString("SEED_DIR"),
		LogLevel:    v.GetString("LOG_LEVEL"),
	}

	return cfg, nil
}
