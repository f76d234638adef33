package outfit

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yanqian/outfitter/internal/domain/calendar"
	"github.com/yanqian/outfitter/internal/domain/wardrobe"
	"github.com/yanqian/outfitter/internal/domain/weather"
	apperrors "github.com/yanqian/outfitter/pkg/errors"
)

const reasoningSeparator = ", "

// Service exposes outfit recommendations.
type Service interface {
	Recommend(ctx context.Context, req Request) (Response, error)
}

// Inventory supplies the full current item list.
type Inventory interface {
	List(ctx context.Context) ([]wardrobe.Item, error)
}

// WeatherSource supplies the current reading.
type WeatherSource interface {
	Current(ctx context.Context) (weather.Reading, error)
}

// Agenda supplies today's events.
type Agenda interface {
	Today(ctx context.Context) ([]calendar.Event, error)
}

type service struct {
	cfg       Config
	engine    *Engine
	inventory Inventory
	weather   WeatherSource
	agenda    Agenda
	logger    *slog.Logger
}

// NewService wires the outfit domain.
func NewService(cfg Config, engine *Engine, inventory Inventory, weatherSrc WeatherSource, agenda Agenda, logger *slog.Logger) Service {
	if strings.TrimSpace(cfg.DefaultCondition) == "" {
		cfg.DefaultCondition = "Unknown"
	}
	if strings.TrimSpace(cfg.DefaultOccasion) == "" {
		cfg.DefaultOccasion = "Casual"
	}
	return &service{
		cfg:       cfg,
		engine:    engine,
		inventory: inventory,
		weather:   weatherSrc,
		agenda:    agenda,
		logger:    logger.With("component", "outfit.service"),
	}
}

func (s *service) Recommend(ctx context.Context, req Request) (Response, error) {
	manual := req.Temperature != nil && req.Condition != nil
	if manual && (math.IsNaN(*req.Temperature) || math.IsInf(*req.Temperature, 0)) {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "temperature must be a finite number", nil)
	}

	var (
		items     []wardrobe.Item
		reading   weather.Reading
		defaulted bool
		occasion  = s.cfg.DefaultOccasion
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.inventory.List(gctx)
		if err != nil {
			if apperrors.CodeOf(err) != "" {
				return err
			}
			return apperrors.Wrap(apperrors.CodeInventoryUnavailable, "failed to read inventory", err)
		}
		items = list
		return nil
	})
	if manual {
		reading = weather.Reading{TemperatureF: *req.Temperature, Condition: *req.Condition, Source: "request"}
	} else {
		g.Go(func() error {
			r, err := s.weather.Current(gctx)
			if err != nil {
				s.logger.Warn("weather unavailable, using default reading", "error", err,
					"temperature", s.cfg.DefaultTemperature, "condition", s.cfg.DefaultCondition)
				r = weather.Reading{TemperatureF: s.cfg.DefaultTemperature, Condition: s.cfg.DefaultCondition, Source: "default"}
				defaulted = true
			}
			reading = r
			return nil
		})
	}
	if s.agenda != nil {
		g.Go(func() error {
			events, err := s.agenda.Today(gctx)
			if err != nil {
				s.logger.Warn("calendar unavailable, using default occasion", "error", err)
				return nil
			}
			for _, ev := range events {
				if o := strings.TrimSpace(ev.Occasion); o != "" {
					occasion = o
					break
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Response{}, err
	}

	result := s.engine.Suggest(items, reading.TemperatureF, reading.Condition)
	s.logger.Info("outfit suggested",
		"category", result.Category,
		"temperature", reading.TemperatureF,
		"condition", reading.Condition,
		"inventory", len(items),
		"selected", len(result.Items),
	)

	return Response{
		Items:            toItemViews(result.Items),
		Reasoning:        strings.Join(result.Reasoning, reasoningSeparator),
		Temperature:      int(reading.TemperatureF),
		Weather:          reading.Condition,
		Category:         result.Category,
		Occasion:         occasion,
		WeatherDefaulted: defaulted,
	}, nil
}

func toItemViews(items []wardrobe.Item) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		view := ItemView{
			ID:    item.ID,
			Label: item.Label,
			Src:   item.Src,
			Alt:   item.AltText(),
		}
		if item.Image != "" {
			image := item.Image
			view.Image = &image
		}
		views = append(views, view)
	}
	return views
}
