package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables
// (and an optional .env file in the working directory).
type Config struct {
	// Server
	Port     int    `mapstructure:"PORT"`
	Env      string `mapstructure:"APP_ENV"` // development | production
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Record store
	StoreDriver    string `mapstructure:"STORE_DRIVER"` // memory | file | sqlite | dynamodb | redis
	StorePath      string `mapstructure:"STORE_PATH"`
	SQLitePath     string `mapstructure:"SQLITE_PATH"`
	SeedSampleData bool   `mapstructure:"SEED_SAMPLE_DATA"`

	// DynamoDB
	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`
	RecordsTable       string `mapstructure:"RECORDS_TABLE"`

	// Redis
	RedisURL       string `mapstructure:"REDIS_URL"`
	RedisKeyPrefix string `mapstructure:"REDIS_KEY_PREFIX"`

	// Relational service
	RelationalPort   int    `mapstructure:"RELATIONAL_PORT"`
	RelationalDriver string `mapstructure:"RELATIONAL_DRIVER"` // mysql | postgres | sqlite
	RelationalDSN    string `mapstructure:"RELATIONAL_DSN"`
}

var keys = []string{
	"PORT", "APP_ENV", "LOG_LEVEL",
	"STORE_DRIVER", "STORE_PATH", "SQLITE_PATH", "SEED_SAMPLE_DATA",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT", "RECORDS_TABLE",
	"REDIS_URL", "REDIS_KEY_PREFIX",
	"RELATIONAL_PORT", "RELATIONAL_DRIVER", "RELATIONAL_DSN",
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	setDefaults(v)

	// Optional .env file for local development, missing is fine
	_ = v.ReadInConfig()

	// Unmarshal only sees keys viper knows about; bind the rest explicitly.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	cfg.RelationalDriver = strings.ToLower(strings.TrimSpace(cfg.RelationalDriver))
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", "memory")
	v.SetDefault("STORE_PATH", "./data")
	v.SetDefault("SQLITE_PATH", "./data/estimates.db")
	v.SetDefault("SEED_SAMPLE_DATA", false)
	v.SetDefault("AWS_REGION", "us-east-1")
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("RECORDS_TABLE", "records")
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("REDIS_KEY_PREFIX", "estimate_app:")
	v.SetDefault("RELATIONAL_PORT", 3000)
	v.SetDefault("RELATIONAL_DRIVER", "mysql")
	v.SetDefault("RELATIONAL_DSN", "root:root@tcp(localhost:3306)/estimate_app?charset=utf8mb4&parseTime=True&loc=Local")
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}
