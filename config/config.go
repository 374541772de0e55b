package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port        string
	Mode        string // debug / release
	CORSOrigins []string
}

type DatabaseConfig struct {
	Path    string
	LogMode bool
}

type AuthConfig struct {
	JWTSecret          string
	JWTExpirationHours int
}

// Load reads .env (if present) with OS environment variables as override.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_MODE", "debug")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	viper.SetDefault("DB_PATH", "data/store.db")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 24)

	cfg := &Config{
		Server: ServerConfig{
			Port:        viper.GetString("SERVER_PORT"),
			Mode:        viper.GetString("SERVER_MODE"),
			CORSOrigins: splitOrigins(viper.GetString("CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			Path:    viper.GetString("DB_PATH"),
			LogMode: viper.GetBool("DB_LOG_MODE"),
		},
		Auth: AuthConfig{
			JWTSecret:          viper.GetString("JWT_SECRET"),
			JWTExpirationHours: viper.GetInt("JWT_EXPIRATION_HOURS"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET is not set; unlock tokens will not survive restarts securely")
	}
	return cfg
}

func splitOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
