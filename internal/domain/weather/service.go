package weather

import (
	"context"
	"log/slog"

	apperrors "github.com/yanqian/outfitter/pkg/errors"
)

// Service exposes the current weather for the configured location.
type Service interface {
	Current(ctx context.Context) (Reading, error)
}

type service struct {
	cfg      Config
	provider Provider
	cache    Cache
	logger   *slog.Logger
}

// NewService wires the weather domain. A nil cache disables caching.
func NewService(cfg Config, provider Provider, cache Cache, logger *slog.Logger) Service {
	if cfg.CacheKey == "" {
		cfg.CacheKey = "current"
	}
	return &service{
		cfg:      cfg,
		provider: provider,
		cache:    cache,
		logger:   logger.With("component", "weather.service"),
	}
}

func (s *service) Current(ctx context.Context) (Reading, error) {
	if s.cache != nil && s.cfg.CacheTTL > 0 {
		reading, ok, err := s.cache.Get(ctx, s.cfg.CacheKey)
		switch {
		case err != nil:
			s.logger.Warn("weather cache read failed", "error", err)
		case ok:
			s.logger.Debug("weather cache hit", "key", s.cfg.CacheKey)
			return reading, nil
		}
	}

	reading, err := s.provider.Current(ctx)
	if err != nil {
		return Reading{}, apperrors.Wrap(apperrors.CodeWeatherUnavailable, "could not retrieve weather data", err)
	}
	s.logger.Info("weather fetched", "temperature", reading.TemperatureF, "condition", reading.Condition, "source", reading.Source)

	if s.cache != nil && s.cfg.CacheTTL > 0 {
		if err := s.cache.Set(ctx, s.cfg.CacheKey, reading, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("weather cache write failed", "error", err)
		}
	}
	return reading, nil
}
