package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP  HTTPConfig  `yaml:"http"`
	Log   LogConfig   `yaml:"log"`
	Redis RedisConfig `yaml:"redis"`
	Kafka KafkaConfig `yaml:"kafka"`
	Fares FaresConfig `yaml:"fares"`
}

type HTTPConfig struct {
	Address         string `yaml:"address"`
	SwaggerDir      string `yaml:"swagger_dir"`
	ShutdownSeconds int    `yaml:"shutdown_timeout_seconds"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RedisConfig is optional; an empty Addr disables the sorted-view cache.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func (r RedisConfig) Enabled() bool { return r.Addr != "" }

type KafkaConfig struct {
	Brokers     []string `yaml:"brokers"`
	IngestTopic string   `yaml:"ingest_topic"`
	EventsTopic string   `yaml:"events_topic"`
	GroupID     string   `yaml:"group_id"`
}

func (k KafkaConfig) Enabled() bool { return len(k.Brokers) > 0 }

const defaultCacheTTLSeconds = 60

// FaresConfig.CacheTTLSeconds must be positive while Redis is enabled: every
// write produces new cache keys, so entries without expiry would pile up.
type FaresConfig struct {
	LoadSample      bool `yaml:"load_sample"`
	CacheTTLSeconds int  `yaml:"cache_ttl_seconds"`
}

func (f FaresConfig) CacheTTL() time.Duration {
	return time.Duration(f.CacheTTLSeconds) * time.Second
}

func (h HTTPConfig) ShutdownTimeout() time.Duration {
	return time.Duration(h.ShutdownSeconds) * time.Second
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{Address: ":8080", ShutdownSeconds: 5},
		Log:  LogConfig{Level: "info", Format: "json"},
		Kafka: KafkaConfig{
			IngestTopic: "flights.ingest",
			EventsTopic: "flights.events",
			GroupID:     "farecompare",
		},
		Fares: FaresConfig{CacheTTLSeconds: defaultCacheTTLSeconds},
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return fmt.Errorf("http.address is required")
	}
	if c.HTTP.ShutdownSeconds <= 0 {
		c.HTTP.ShutdownSeconds = 5
	}
	if c.Fares.CacheTTLSeconds < 0 {
		return fmt.Errorf("fares.cache_ttl_seconds must not be negative, got %d", c.Fares.CacheTTLSeconds)
	}
	if c.Fares.CacheTTLSeconds == 0 && c.Redis.Enabled() {
		c.Fares.CacheTTLSeconds = defaultCacheTTLSeconds
	}
	if c.Kafka.Enabled() && c.Kafka.GroupID == "" {
		return fmt.Errorf("kafka.group_id is required when brokers are set")
	}
	return nil
}
