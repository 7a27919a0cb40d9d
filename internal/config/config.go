// Package config собирает настройки сервера и клиента из файла и переменных окружения.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultAddr = ":3001"

const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageInMemory = "in-memory"
)

type Config struct {
	Addr           string        `mapstructure:"addr"`
	Storage        string        `mapstructure:"storage"`
	DatabaseURL    string        `mapstructure:"database_url"`
	SQLitePath     string        `mapstructure:"sqlite_path"`
	LogSQL         bool          `mapstructure:"log_sql"`
	APIURL         string        `mapstructure:"api_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	ToastDuration  time.Duration `mapstructure:"toast_duration"`

	// Повторы запросов не реализованы; значения только читаются из конфигурации.
	RetryCount int           `mapstructure:"retry_count"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

// Load читает необязательный файл path (yaml, json, toml - по расширению)
// и переменные окружения BLOG_*. Окружение важнее файла.
// PORT и DATABASE_URL тоже поддерживаются, если BLOG_* не заданы.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("storage", StorageSQLite)
	v.SetDefault("database_url", "")
	v.SetDefault("sqlite_path", "data/blog.db")
	v.SetDefault("log_sql", false)
	v.SetDefault("api_url", "http://localhost:3001/api/posts")
	v.SetDefault("request_timeout", time.Duration(0))
	v.SetDefault("toast_duration", 3*time.Second)
	v.SetDefault("retry_count", 3)
	v.SetDefault("retry_delay", time.Second)

	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("addr")
	_ = v.BindEnv("database_url", "BLOG_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("port", "PORT")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// PORT из окружения задает только порт; явный addr важнее
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
		if port := v.GetString("port"); port != "" {
			cfg.Addr = ":" + port
		}
	}
	return &cfg, nil
}

// Validate проверяет выбор хранилища и обязательные для него параметры.
// Нужен только серверу; Load его не вызывает.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageSQLite:
		if c.SQLitePath == "" {
			return errors.New("sqlite_path must be set for sqlite storage")
		}
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL must be set for postgres storage")
		}
	case StorageInMemory:
	default:
		return fmt.Errorf("unknown storage %q (want %s, %s or %s)", c.Storage, StorageSQLite, StoragePostgres, StorageInMemory)
	}
	if c.RequestTimeout < 0 {
		return errors.New("request_timeout must not be negative")
	}
	return nil
}
