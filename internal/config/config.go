package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Redis  RedisConfig
	Cache  CacheConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
	StaticDir    string
}

type GeminiConfig struct {
	// APIKey is the single key shared by both entry points. The process
	// refuses to start without it.
	APIKey string

	// Model is used by the study orchestrator; ProxyModel by the plain
	// generation proxy. The two entry points are independent and keep
	// separate model identifiers.
	Model      string
	ProxyModel string
}

type RedisConfig struct {
	// Address is optional; when empty the summary cache is disabled.
	Address  string
	Password string
	DB       int
}

type CacheConfig struct {
	SummaryTTL time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

// LoadConfig reads config.yaml (when present) and overlays environment
// variables. A missing config file is not an error; every setting has a
// default or an environment override.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")
	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 60)
	viper.SetDefault("server.idle_timeout", 20)
	viper.SetDefault("server.body_limit_mb", 10)
	viper.SetDefault("server.static_dir", "./web/dist")
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.proxy_model", "gemini-2.0-flash")
	viper.SetDefault("cache.summary_ttl", 3600)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			IdleTimeout:  viper.GetDuration("server.idle_timeout") * time.Second,
			BodyLimit:    viper.GetInt("server.body_limit_mb") * 1024 * 1024,
			StaticDir:    viper.GetString("server.static_dir"),
		},
		Gemini: GeminiConfig{
			APIKey:     viper.GetString("gemini.api_key"),
			Model:      viper.GetString("gemini.model"),
			ProxyModel: viper.GetString("gemini.proxy_model"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			SummaryTTL: viper.GetDuration("cache.summary_ttl") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Environment variables take precedence over the config file.
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		config.Gemini.Model = model
	}
	if model := os.Getenv("GEMINI_PROXY_MODEL"); model != "" {
		config.Gemini.ProxyModel = model
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		viper.Set("server.port", port)
		config.Server.Port = viper.GetInt("server.port")
	}
	if staticDir := os.Getenv("STATIC_DIR"); staticDir != "" {
		config.Server.StaticDir = staticDir
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}

	return config, nil
}
