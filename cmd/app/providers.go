package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/outfitter/internal/domain/calendar"
	"github.com/yanqian/outfitter/internal/domain/outfit"
	"github.com/yanqian/outfitter/internal/domain/wardrobe"
	"github.com/yanqian/outfitter/internal/domain/weather"
	"github.com/yanqian/outfitter/internal/infra/calendarrepo"
	"github.com/yanqian/outfitter/internal/infra/config"
	"github.com/yanqian/outfitter/internal/infra/storage"
	"github.com/yanqian/outfitter/internal/infra/wardroberepo"
	"github.com/yanqian/outfitter/internal/infra/weather/openmeteo"
	"github.com/yanqian/outfitter/internal/infra/weathercache"
)

func provideWeatherConfig(cfg *config.Config) weather.Config {
	return weather.Config{
		CacheKey: fmt.Sprintf("%.4f,%.4f", cfg.Weather.Latitude, cfg.Weather.Longitude),
		CacheTTL: cfg.Weather.CacheTTL,
	}
}

func provideWeatherProvider(cfg *config.Config) weather.Provider {
	return openmeteo.NewClient(cfg.Weather.APIBaseURL, cfg.Weather.Latitude, cfg.Weather.Longitude)
}

// provideWeatherCache prefers Valkey and falls back to process memory when it is
// disabled or unreachable. The cleanup closes the Valkey client.
func provideWeatherCache(cfg *config.Config, logger *slog.Logger) (weather.Cache, func()) {
	noop := func() {}
	if !cfg.Weather.Redis.Enabled {
		return weathercache.NewMemoryStore(), noop
	}
	opt, err := buildValkeyOptions(cfg.Weather.Redis.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
		return weathercache.NewMemoryStore(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
		return weathercache.NewMemoryStore(), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		client.Close()
		return weathercache.NewMemoryStore(), noop
	}
	logger.Info("weather valkey cache enabled", "addr", cfg.Weather.Redis.Addr)
	return weathercache.NewValkeyStore(client, cfg.Weather.Redis.Prefix), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideWardrobeConfig(cfg *config.Config) wardrobe.Config {
	return wardrobe.Config{
		PublicBaseURL:  cfg.Wardrobe.PublicBaseURL,
		MaxUploadBytes: cfg.Wardrobe.MaxUploadBytes,
	}
}

func provideWardrobeRepository(cfg *config.Config) wardrobe.Repository {
	return wardroberepo.NewJSONRepository(cfg.Wardrobe.InventoryPath)
}

func provideObjectStorage(cfg *config.Config, logger *slog.Logger) (wardrobe.ObjectStorage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverR2:
		r2 := cfg.Storage.R2
		store, err := storage.NewR2Storage(r2.Endpoint, r2.AccessKey, r2.SecretKey, r2.Bucket, r2.Region, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("r2 image storage enabled", "bucket", r2.Bucket)
		return store, nil
	default:
		store, err := storage.NewLocalStorage(cfg.Storage.LocalDir)
		if err != nil {
			return nil, err
		}
		logger.Info("local image storage enabled", "dir", cfg.Storage.LocalDir)
		return store, nil
	}
}

func provideCalendarRepository(cfg *config.Config) calendar.Repository {
	return calendarrepo.NewJSONRepository(cfg.Calendar.EventsPath)
}

func provideOutfitConfig(cfg *config.Config) outfit.Config {
	return outfit.Config{
		DefaultTemperature: cfg.Outfit.DefaultTemperature,
		DefaultCondition:   cfg.Outfit.DefaultCondition,
		DefaultOccasion:    cfg.Outfit.DefaultOccasion,
	}
}

func provideOutfitEngine() *outfit.Engine {
	return outfit.NewEngine(nil)
}

func provideInventory(svc wardrobe.Service) outfit.Inventory { return svc }

func provideWeatherSource(svc weather.Service) outfit.WeatherSource { return svc }

func provideAgenda(svc calendar.Service) outfit.Agenda { return svc }
