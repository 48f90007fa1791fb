package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config 应用程序配置
type Config struct {
	ServerAddress string // HTTP listen address
	MongoURI      string // MongoDB connection URI
	MongoDBName   string // MongoDB database name
	LogLevel      string // logrus level
}

// Load reads configuration from the environment, with an optional .env
// file for local development.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine; the environment is the source of truth.
	_ = viper.ReadInConfig()

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("MONGO_DB_NAME", "mizan")
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		ServerAddress: viper.GetString("SERVER_ADDRESS"),
		MongoURI:      viper.GetString("MONGO_URI"),
		MongoDBName:   viper.GetString("MONGO_DB_NAME"),
		LogLevel:      viper.GetString("LOG_LEVEL"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	return cfg, nil
}
