package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type GatewayConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	KeyID     string `mapstructure:"key_id"`
	KeySecret string `mapstructure:"key_secret"`
	Currency  string `mapstructure:"currency"`
}

type MySQLConfig struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Database string `mapstructure:"database"`
}

type Config struct {
	Port          string        `mapstructure:"port"`
	DefaultAmount int64         `mapstructure:"default_amount"`
	Gateway       GatewayConfig `mapstructure:"gateway"`
	MySQL         MySQLConfig   `mapstructure:"mysql"`
	RedisHost     string        `mapstructure:"redis_host"`
	AMQPURL       string        `mapstructure:"amqp_url"`
}

// Load reads configuration from, in order of precedence (lowest first):
// a JSON config file, the APP_CONFIG JSON blob, then PAYMENT_* environment
// variables. All three deployment styles end up in the same Config.
func Load() (*Config, error) {
	return load(os.Getenv("CONFIG_FILE"), os.Getenv("APP_CONFIG"))
}

func load(configFile, configBlob string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("json")

	v.SetDefault("port", "8080")
	v.SetDefault("default_amount", 24900)
	v.SetDefault("gateway.base_url", "https://api.razorpay.com")
	v.SetDefault("gateway.currency", "INR")
	v.SetDefault("mysql.port", "3306")

	if configFile == "" {
		configFile = "config.json"
	}
	if _, err := os.Stat(configFile); err == nil {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	if configBlob != "" {
		if err := v.MergeConfig(bytes.NewReader([]byte(configBlob))); err != nil {
			return nil, fmt.Errorf("parse APP_CONFIG: %w", err)
		}
	}

	v.SetEnvPrefix("PAYMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{
		"port", "default_amount",
		"gateway.base_url", "gateway.key_id", "gateway.key_secret", "gateway.currency",
		"mysql.user", "mysql.password", "mysql.host", "mysql.port", "mysql.database",
		"redis_host", "amqp_url",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Gateway.KeyID == "" || c.Gateway.KeySecret == "" {
		return errors.New("gateway key_id and key_secret are required")
	}
	if c.DefaultAmount <= 0 {
		return errors.New("default_amount must be positive")
	}
	return nil
}

func (c *MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Database)
}
