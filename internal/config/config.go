package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort    string
	GinMode       string
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SessionSecret string
	DemoUserID    uint64
	SeedDatabase  bool
}

// Load reads configuration from the environment with sensible defaults.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "teamflow")
	v.SetDefault("DB_PASSWORD", "teamflow")
	v.SetDefault("DB_NAME", "teamflow")
	v.SetDefault("SESSION_SECRET", "default-secret-key-change-me")
	v.SetDefault("DEMO_USER_ID", 1)
	v.SetDefault("SEED_DATABASE", false)

	return &Config{
		ServerPort:    v.GetString("SERVER_PORT"),
		GinMode:       v.GetString("GIN_MODE"),
		DBDriver:      v.GetString("DB_DRIVER"),
		DBHost:        v.GetString("DB_HOST"),
		DBPort:        v.GetString("DB_PORT"),
		DBUser:        v.GetString("DB_USER"),
		DBPassword:    v.GetString("DB_PASSWORD"),
		DBName:        v.GetString("DB_NAME"),
		SessionSecret: v.GetString("SESSION_SECRET"),
		DemoUserID:    v.GetUint64("DEMO_USER_ID"),
		SeedDatabase:  v.GetBool("SEED_DATABASE"),
	}
}
