package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Weather  WeatherConfig  `yaml:"weather"`
	Wardrobe WardrobeConfig `yaml:"wardrobe"`
	Storage  StorageConfig  `yaml:"storage"`
	Calendar CalendarConfig `yaml:"calendar"`
	Outfit   OutfitConfig   `yaml:"outfit"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// WeatherConfig points at the Open-Meteo API and the reading cache.
type WeatherConfig struct {
	APIBaseURL string        `yaml:"apiBaseUrl"`
	Latitude   float64       `yaml:"latitude"`
	Longitude  float64       `yaml:"longitude"`
	CacheTTL   time.Duration `yaml:"cacheTtl"`
	Redis      RedisConfig   `yaml:"redis"`
}

// RedisConfig contains connection information for cache storage.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// WardrobeConfig locates the inventory document and controls uploads.
type WardrobeConfig struct {
	InventoryPath  string `yaml:"inventoryPath"`
	PublicBaseURL  string `yaml:"publicBaseUrl"`
	MaxUploadBytes int64  `yaml:"maxUploadBytes"`
}

// StorageConfig selects where uploaded photos are kept.
type StorageConfig struct {
	Driver   string   `yaml:"driver"`
	LocalDir string   `yaml:"localDir"`
	R2       R2Config `yaml:"r2"`
}

// R2Config holds Cloudflare R2 (S3-compatible) credentials.
type R2Config struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

// CalendarConfig locates the events document.
type CalendarConfig struct {
	EventsPath string `yaml:"eventsPath"`
}

// OutfitConfig holds the fallbacks used when collaborators are unavailable.
type OutfitConfig struct {
	DefaultTemperature float64 `yaml:"defaultTemperature"`
	DefaultCondition   string  `yaml:"defaultCondition"`
	DefaultOccasion    string  `yaml:"defaultOccasion"`
}

const (
	StorageDriverLocal = "local"
	StorageDriverR2    = "r2"
)

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}

	if v := os.Getenv("WEATHER_API_BASE_URL"); v != "" {
		cfg.Weather.APIBaseURL = v
	}
	if v := os.Getenv("WEATHER_LATITUDE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Weather.Latitude = parsed
		}
	}
	if v := os.Getenv("WEATHER_LONGITUDE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Weather.Longitude = parsed
		}
	}
	if v := os.Getenv("WEATHER_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Weather.CacheTTL = parsed
		}
	}
	if v := os.Getenv("WEATHER_REDIS_ENABLED"); v != "" {
		cfg.Weather.Redis.Enabled = parseBool(v)
	}
	if v := os.Getenv("WEATHER_REDIS_ADDR"); v != "" {
		cfg.Weather.Redis.Addr = v
	}

	if v := os.Getenv("WARDROBE_INVENTORY_PATH"); v != "" {
		cfg.Wardrobe.InventoryPath = v
	}
	if v := os.Getenv("WARDROBE_PUBLIC_BASE_URL"); v != "" {
		cfg.Wardrobe.PublicBaseURL = v
	}
	if v := os.Getenv("WARDROBE_MAX_UPLOAD_BYTES"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Wardrobe.MaxUploadBytes = parsed
		}
	}

	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("STORAGE_LOCAL_DIR"); v != "" {
		cfg.Storage.LocalDir = v
	}
	if v := os.Getenv("R2_ENDPOINT"); v != "" {
		cfg.Storage.R2.Endpoint = v
	}
	if v := os.Getenv("R2_ACCESS_KEY"); v != "" {
		cfg.Storage.R2.AccessKey = v
	}
	if v := os.Getenv("R2_SECRET_KEY"); v != "" {
		cfg.Storage.R2.SecretKey = v
	}
	if v := os.Getenv("R2_BUCKET"); v != "" {
		cfg.Storage.R2.Bucket = v
	}
	if v := os.Getenv("R2_REGION"); v != "" {
		cfg.Storage.R2.Region = v
	}

	if v := os.Getenv("CALENDAR_EVENTS_PATH"); v != "" {
		cfg.Calendar.EventsPath = v
	}

	if v := os.Getenv("OUTFIT_DEFAULT_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Outfit.DefaultTemperature = parsed
		}
	}
	if v := os.Getenv("OUTFIT_DEFAULT_CONDITION"); v != "" {
		cfg.Outfit.DefaultCondition = v
	}
	if v := os.Getenv("OUTFIT_DEFAULT_OCCASION"); v != "" {
		cfg.Outfit.DefaultOccasion = v
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
				Exclude: []string{
					"/api/v1/items",
					"/api/v1/events",
				},
			},
		},
		Weather: WeatherConfig{
			APIBaseURL: "https://api.open-meteo.com/v1/forecast",
			Latitude:   40.7128,
			Longitude:  -74.0060,
			CacheTTL:   10 * time.Minute,
			Redis: RedisConfig{
				Prefix: "outfitter:weather",
			},
		},
		Wardrobe: WardrobeConfig{
			InventoryPath:  "data/clothing.json",
			PublicBaseURL:  "/api/v1/images",
			MaxUploadBytes: 10 << 20,
		},
		Storage: StorageConfig{
			Driver:   StorageDriverLocal,
			LocalDir: "data/images",
			R2: R2Config{
				Region: "auto",
			},
		},
		Calendar: CalendarConfig{
			EventsPath: "data/events.json",
		},
		Outfit: OutfitConfig{
			DefaultTemperature: 65,
			DefaultCondition:   "Unknown",
			DefaultOccasion:    "Casual",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	if strings.TrimSpace(c.Weather.APIBaseURL) == "" {
		return errors.New("weather.apiBaseUrl cannot be empty")
	}
	if c.Weather.Latitude < -90 || c.Weather.Latitude > 90 {
		return errors.New("weather.latitude must be within [-90, 90]")
	}
	if c.Weather.Longitude < -180 || c.Weather.Longitude > 180 {
		return errors.New("weather.longitude must be within [-180, 180]")
	}
	if c.Weather.CacheTTL < 0 {
		return errors.New("weather.cacheTtl cannot be negative")
	}
	if c.Weather.Redis.Enabled && strings.TrimSpace(c.Weather.Redis.Addr) == "" {
		return errors.New("weather.redis.addr cannot be empty when redis cache is enabled")
	}
	if strings.TrimSpace(c.Wardrobe.InventoryPath) == "" {
		return errors.New("wardrobe.inventoryPath cannot be empty")
	}
	if c.Wardrobe.MaxUploadBytes <= 0 {
		return errors.New("wardrobe.maxUploadBytes must be positive")
	}
	switch c.Storage.Driver {
	case StorageDriverLocal:
		if strings.TrimSpace(c.Storage.LocalDir) == "" {
			return errors.New("storage.localDir cannot be empty for the local driver")
		}
	case StorageDriverR2:
		r2 := c.Storage.R2
		if r2.Endpoint == "" || r2.AccessKey == "" || r2.SecretKey == "" || r2.Bucket == "" {
			return errors.New("storage.r2 endpoint, accessKey, secretKey and bucket are required for the r2 driver")
		}
	default:
		return fmt.Errorf("storage.driver %q is not supported", c.Storage.Driver)
	}
	if strings.TrimSpace(c.Calendar.EventsPath) == "" {
		return errors.New("calendar.eventsPath cannot be empty")
	}
	if math.IsNaN(c.Outfit.DefaultTemperature) || math.IsInf(c.Outfit.DefaultTemperature, 0) {
		return errors.New("outfit.defaultTemperature must be finite")
	}
	if strings.TrimSpace(c.Outfit.DefaultCondition) == "" {
		return errors.New("outfit.defaultCondition cannot be empty")
	}
	return nil
}
