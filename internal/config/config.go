package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type BrokerageConfig struct {
	BaseURL   string `yaml:"base_url"`
	ClientID  string `yaml:"client_id"`
	Timeout   string `yaml:"timeout"`
	Scope     string `yaml:"scope"`
	ExpiresIn int    `yaml:"expires_in"`
}

type CacheConfig struct {
	Backend string `yaml:"backend"`
	TTL     string `yaml:"ttl"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Brokerage BrokerageConfig `yaml:"brokerage"`
	Cache     CacheConfig     `yaml:"cache"`
	Redis     RedisConfig     `yaml:"redis"`
	Database  DatabaseConfig  `yaml:"database"`
}

type Config struct {
	Port             string
	GinMode          string
	BrokerageBaseURL string
	BrokerageClient  string
	BrokerageTimeout time.Duration
	LoginScope       string
	LoginExpiresIn   int
	CacheBackend     string
	CacheTTL         time.Duration
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	DSN              string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides for the
// values that are deployment secrets.
func Load() (*Config, error) {
	return LoadFile(env("TRADEXPORT_CONFIG", "config/config.yml"))
}

// LoadFile reads the given yaml config file.
func LoadFile(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	timeout, err := time.ParseDuration(configFile.Brokerage.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid brokerage timeout: %w", err)
	}

	cacheTTL := time.Duration(0)
	if configFile.Cache.TTL != "" {
		cacheTTL, err = time.ParseDuration(configFile.Cache.TTL)
		if err != nil {
			return nil, fmt.Errorf("invalid cache TTL: %w", err)
		}
	}

	backend := configFile.Cache.Backend
	if backend == "" {
		backend = "redis"
	}
	if backend != "redis" && backend != "postgres" {
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}

	scope := configFile.Brokerage.Scope
	if scope == "" {
		scope = "internal"
	}
	expiresIn := configFile.Brokerage.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 86400
	}

	return &Config{
		Port:             fmt.Sprintf("%d", configFile.App.Port),
		GinMode:          configFile.App.GinMode,
		BrokerageBaseURL: configFile.Brokerage.BaseURL,
		BrokerageClient:  env("BROKERAGE_CLIENT_ID", configFile.Brokerage.ClientID),
		BrokerageTimeout: timeout,
		LoginScope:       scope,
		LoginExpiresIn:   expiresIn,
		CacheBackend:     backend,
		CacheTTL:         cacheTTL,
		RedisAddr:        configFile.Redis.Addr,
		RedisPassword:    env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:          configFile.Redis.DB,
		DSN:              env("DATABASE_DSN", configFile.Database.DSN),
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
