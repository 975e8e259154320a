package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Geocoder  GeocoderConfig
	Discovery DiscoveryConfig
	LLM       LLMConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	GeocodeCacheTTL time.Duration
	NearbyCacheTTL  time.Duration
}

type LogConfig struct {
	Level string
}

// GeocoderConfig - настройки Nominatim-совместимого геокодера
type GeocoderConfig struct {
	BaseURL        string
	UserAgent      string
	RequestTimeout int // seconds
}

// DiscoveryConfig - настройки Overpass-совместимого источника POI
type DiscoveryConfig struct {
	BaseURL        string
	RequestTimeout int // seconds
	DefaultRadiusM int
}

// LLMConfig - настройки генеративной стратегии оценки.
// Пустой APIKey означает режим HEURISTIC_ONLY.
type LLMConfig struct {
	APIKey         string
	Model          string
	BaseURL        string
	RequestTimeout int // seconds
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env is optional, environment variables are enough
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			GeocodeCacheTTL: time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
			NearbyCacheTTL:  time.Duration(viper.GetInt("NEARBY_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Geocoder: GeocoderConfig{
			BaseURL:        viper.GetString("GEOCODER_BASE_URL"),
			UserAgent:      viper.GetString("GEOCODER_USER_AGENT"),
			RequestTimeout: viper.GetInt("GEOCODER_REQUEST_TIMEOUT"),
		},
		Discovery: DiscoveryConfig{
			BaseURL:        viper.GetString("DISCOVERY_BASE_URL"),
			RequestTimeout: viper.GetInt("DISCOVERY_REQUEST_TIMEOUT"),
			DefaultRadiusM: viper.GetInt("DISCOVERY_DEFAULT_RADIUS"),
		},
		LLM: LLMConfig{
			APIKey:         viper.GetString("LLM_API_KEY"),
			Model:          viper.GetString("LLM_MODEL"),
			BaseURL:        viper.GetString("LLM_BASE_URL"),
			RequestTimeout: viper.GetInt("LLM_REQUEST_TIMEOUT"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Cache.GeocodeCacheTTL == 0 {
		cfg.Cache.GeocodeCacheTTL = 24 * time.Hour
	}
	if cfg.Cache.NearbyCacheTTL == 0 {
		cfg.Cache.NearbyCacheTTL = 10 * time.Minute
	}
	if cfg.Geocoder.BaseURL == "" {
		cfg.Geocoder.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geocoder.UserAgent == "" {
		cfg.Geocoder.UserAgent = "neighborhood-service"
	}
	if cfg.Geocoder.RequestTimeout == 0 {
		cfg.Geocoder.RequestTimeout = 10
	}
	if cfg.Discovery.BaseURL == "" {
		cfg.Discovery.BaseURL = "https://overpass-api.de/api/interpreter"
	}
	if cfg.Discovery.RequestTimeout == 0 {
		cfg.Discovery.RequestTimeout = 25
	}
	if cfg.Discovery.DefaultRadiusM == 0 {
		cfg.Discovery.DefaultRadiusM = 300
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "openai/gpt-4o-mini"
	}
	if cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = "https://openrouter.ai/api/v1"
	}
	if cfg.LLM.RequestTimeout == 0 {
		cfg.LLM.RequestTimeout = 30
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
