package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Map      MapConfig      `json:"map"`
	Geocoder GeocoderConfig `json:"geocoder"`
	Location LocationConfig `json:"location"`
	Redis    RedisConfig    `json:"redis"`
	Webhook  WebhookConfig  `json:"webhook"`
	Workers  WorkersConfig  `json:"workers"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type MapConfig struct {
	// DefaultCenterLat/Lng is the fallback map center used until the device
	// position resolves and whenever no user location ever arrives.
	DefaultCenterLat float64 `json:"default_center_lat"`
	DefaultCenterLng float64 `json:"default_center_lng"`
	AlertRadiusM     float64 `json:"alert_radius_m"`
	SeedDemo         bool    `json:"seed_demo"`
}

type GeocoderConfig struct {
	URL       string        `json:"url"`
	UserAgent string        `json:"user_agent"`
	Timeout   time.Duration `json:"timeout"`
}

type LocationConfig struct {
	URL          string        `json:"url,omitempty"`
	Timeout      time.Duration `json:"timeout"`
	HighAccuracy bool          `json:"high_accuracy"`
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type WebhookConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

type WorkersConfig struct {
	PoolSize int `json:"pool_size"`
}

func Load() (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Map: MapConfig{
			DefaultCenterLat: getEnvFloat("MAP_DEFAULT_CENTER_LAT", 37.7749),
			DefaultCenterLng: getEnvFloat("MAP_DEFAULT_CENTER_LNG", -122.4194),
			AlertRadiusM:     getEnvFloat("MAP_ALERT_RADIUS_M", 1000),
			SeedDemo:         getEnvBool("MAP_SEED_DEMO", false),
		},
		Geocoder: GeocoderConfig{
			URL:       getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org/search"),
			UserAgent: getEnv("GEOCODER_USER_AGENT", "safestreet/1.0"),
			Timeout:   getEnvDuration("GEOCODER_TIMEOUT", 10*time.Second),
		},
		Location: LocationConfig{
			URL:          getEnv("LOCATION_URL", ""),
			Timeout:      getEnvDuration("LOCATION_TIMEOUT", 5*time.Second),
			HighAccuracy: getEnvBool("LOCATION_HIGH_ACCURACY", true),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Webhook: WebhookConfig{
			URL:      getEnv("WEBHOOK_URL", ""),
			Disabled: getEnvBool("WEBHOOK_DISABLED", false),
		},
		Workers: WorkersConfig{
			PoolSize: getEnvInt("WORKERS_POOL_SIZE", 4),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("geocoder_url", cfg.Geocoder.URL),
		slog.Bool("webhook_disabled", cfg.Webhook.Disabled),
	)

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Geocoder.URL == "" {
		return errors.New("GEOCODER_URL required")
	}

	if c.Map.DefaultCenterLat < -90 || c.Map.DefaultCenterLat > 90 ||
		c.Map.DefaultCenterLng < -180 || c.Map.DefaultCenterLng > 180 {
		return errors.New("MAP_DEFAULT_CENTER out of range")
	}

	if c.Map.AlertRadiusM <= 0 {
		return errors.New("MAP_ALERT_RADIUS_M must be positive")
	}

	if c.Workers.PoolSize < 1 {
		return errors.New("WORKERS_POOL_SIZE must be at least 1")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
