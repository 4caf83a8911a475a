package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	CORS  CORSConfig
	Redis RedisConfig
	Log   LogConfig
}

type AppConfig struct {
	Port     string
	Env      string
	Debug    bool
	Timezone string
}

type DBConfig struct {
	Driver       string
	URL          string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxIdleConns int
	MaxOpenConns int
	LogLevel     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	Channel  string
}

type LogConfig struct {
	Level  string
	Format string
}

var defaults = map[string]interface{}{
	"APP_PORT":             "8000",
	"APP_ENV":              "development",
	"APP_DEBUG":            false,
	"APP_TIMEZONE":         "",
	"DB_DRIVER":            "postgres",
	"DATABASE_URL":         "",
	"DB_HOST":              "localhost",
	"DB_PORT":              "5432",
	"DB_USER":              "postgres",
	"DB_PASSWORD":          "",
	"DB_NAME":              "hospital",
	"DB_SSLMODE":           "disable",
	"DB_MAX_IDLE_CONNS":    10,
	"DB_MAX_OPEN_CONNS":    100,
	"DB_LOG_LEVEL":         "warn",
	"CORS_ALLOWED_ORIGINS": "http://localhost:3000,http://127.0.0.1:3000",
	"REDIS_ENABLED":        false,
	"REDIS_HOST":           "localhost",
	"REDIS_PORT":           "6379",
	"REDIS_PASSWORD":       "",
	"REDIS_DB":             0,
	"REDIS_CHANNEL":        "hospital.events",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
}

// LoadConfig reads .env from the working directory when present, then the
// environment. Environment variables win over the file.
func LoadConfig() (*Config, error) {
	return load(".env")
}

func load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			Debug:    v.GetBool("APP_DEBUG"),
			Timezone: v.GetString("APP_TIMEZONE"),
		},
		DB: DBConfig{
			Driver:       strings.ToLower(v.GetString("DB_DRIVER")),
			URL:          v.GetString("DATABASE_URL"),
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			Name:         v.GetString("DB_NAME"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			LogLevel:     v.GetString("DB_LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			Channel:  v.GetString("REDIS_CHANNEL"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	return config, nil
}

// Location resolves APP_TIMEZONE. Empty means the process local zone.
func (c AppConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
