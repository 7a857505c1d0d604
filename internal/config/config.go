// Package config reads runtime settings. Values come from an optional
// YAML file named by FLEXLINEN_CONFIG, then from the environment (and a
// .env file), then from defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port      string        `yaml:"port"`
	AppEnv    string        `yaml:"app_env"`
	LogLevel  string        `yaml:"log_level"`
	CartDelay time.Duration `yaml:"cart_delay"`
	Storage   StorageConfig `yaml:"storage"`
	DB        DBConfig      `yaml:"db"`
}

type StorageConfig struct {
	// Driver is one of file, postgres or memory.
	Driver string `yaml:"driver"`
	Dir    string `yaml:"dir"`
}

type DBConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Port:      "8080",
		AppEnv:    "development",
		LogLevel:  "info",
		CartDelay: 300 * time.Millisecond,
		Storage:   StorageConfig{Driver: DriverFile, Dir: "data"},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			Name:     "flexlinen",
			SSLMode:  "disable",
		},
	}
}

// Load reads .env when present and builds the config from the process
// environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the config using getenv for lookups.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	if path := strings.TrimSpace(getenv("FLEXLINEN_CONFIG")); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.mergeEnv(getenv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv(getenv func(string) string) error {
	set := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v := strings.TrimSpace(getenv(k)); v != "" {
				*dst = v
				return
			}
		}
	}
	set(&c.Port, "PORT")
	set(&c.AppEnv, "APP_ENV")
	set(&c.LogLevel, "LOG_LEVEL")
	set(&c.Storage.Driver, "STORAGE_DRIVER")
	set(&c.Storage.Dir, "STORAGE_DIR")
	set(&c.DB.DSN, "DB_DSN")
	set(&c.DB.Host, "DB_HOST")
	set(&c.DB.Port, "DB_PORT")
	set(&c.DB.User, "DB_USER", "POSTGRES_USER")
	set(&c.DB.Password, "DB_PASSWORD", "POSTGRES_PASSWORD")
	set(&c.DB.Name, "DB_NAME", "POSTGRES_DB")
	set(&c.DB.SSLMode, "DB_SSLMODE")

	if v := strings.TrimSpace(getenv("CART_DELAY")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CART_DELAY: %w", err)
		}
		c.CartDelay = d
	}
	c.Storage.Driver = strings.ToLower(c.Storage.Driver)
	c.AppEnv = strings.ToLower(c.AppEnv)
	return nil
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverFile:
		if c.Storage.Dir == "" {
			return errors.New("storage dir is required for the file driver")
		}
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.CartDelay < 0 {
		return errors.New("cart delay must not be negative")
	}
	if c.Port == "" {
		return errors.New("port is required")
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

// ConnString returns DSN when set, otherwise a key/value DSN built from
// the individual fields.
func (d DBConfig) ConnString() string {
	if strings.TrimSpace(d.DSN) != "" {
		return d.DSN
	}
	return "host=" + d.Host + " user=" + d.User + " password=" + d.Password +
		" dbname=" + d.Name + " port=" + d.Port + " sslmode=" + d.SSLMode
}
