package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Upstream clinic backend.
	BackendBaseURL   string `mapstructure:"BACKEND_BASE_URL"`
	BackendTimeoutMS int    `mapstructure:"BACKEND_TIMEOUT_MS"`

	// Mongo holds the audit trail.
	MongoURL string `mapstructure:"MONGO_URL"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisSnapshotDB int    `mapstructure:"REDIS_SNAPSHOT_DB"`
	RedisCoalesceDB int    `mapstructure:"REDIS_COALESCE_DB"`
	RedisAuditDB    int    `mapstructure:"REDIS_AUDIT_DB"`

	// Schedule editing defaults.
	SnapshotTTLMin   int    `mapstructure:"SNAPSHOT_TTL_MIN"`
	DefaultSlotStart string `mapstructure:"DEFAULT_SLOT_START"`
	DefaultSlotEnd   string `mapstructure:"DEFAULT_SLOT_END"`

	// Treatment search coalescing window (mirrors the dashboards' filter debounce).
	FilterCoalesceMS int `mapstructure:"FILTER_COALESCE_MS"`
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

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:9090")
	viper.SetDefault("BACKEND_TIMEOUT_MS", 10000)
	viper.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SNAPSHOT_DB", 0)
	viper.SetDefault("REDIS_COALESCE_DB", 1)
	viper.SetDefault("REDIS_AUDIT_DB", 2)
	viper.SetDefault("SNAPSHOT_TTL_MIN", 120)
	viper.SetDefault("DEFAULT_SLOT_START", "09:00")
	viper.SetDefault("DEFAULT_SLOT_END", "17:00")
	viper.SetDefault("FILTER_COALESCE_MS", 500)

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
