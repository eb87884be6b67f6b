package config

import (
	"fmt"

	"github.com/caarlos0/env/v8"
	"github.com/kr/pretty"
)

type Config struct {
	ServerPort string `env:"PORT" envDefault:"5000"`
	Mongodb    MongodbConfig
	Jwt        JwtConfig
	Redis      RedisConfig
	Review     ReviewConfig
}

func ReadConfig() (*Config, error) {
	var cfg Config
	err := env.Parse(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Mongodb.Timeout <= 0 {
		return nil, fmt.Errorf("%s must be a positive duration", MongodbTimeout)
	}

	return &cfg, nil
}

// Print writes the config to stdout with credentials masked.
func (c *Config) Print() {
	printable := *c
	printable.Mongodb.Password = redacted
	printable.Jwt.Secret = redacted
	if printable.Redis.Password != "" {
		printable.Redis.Password = redacted
	}
	_, _ = pretty.Println(printable)
}
