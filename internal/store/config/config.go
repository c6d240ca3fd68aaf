package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	MongoURI          string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	DBName            string        `env:"DB_NAME" envDefault:"store_db"`
	Port              string        `env:"PORT" envDefault:"8080"`
	ConfigsCollection string        `env:"COLLECTION_CONFIGS" envDefault:"collection_configs"`
	SchemasCollection string        `env:"COLLECTION_SCHEMAS" envDefault:"collection_schemas"`
	ReadTimeout       time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout      time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`

	// Optional ambient services; empty address disables the integration
	RedisAddr    string        `env:"REDIS_ADDR"`
	CacheTTL     time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	KafkaBrokers string        `env:"KAFKA_BROKERS"`
	KafkaTopic   string        `env:"KAFKA_TOPIC" envDefault:"store-events"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.KafkaBrokers != "" && c.KafkaTopic == "" {
		return fmt.Errorf("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	return nil
}
