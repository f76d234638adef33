//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/outfitter/internal/bootstrap"
	"github.com/yanqian/outfitter/internal/domain/calendar"
	"github.com/yanqian/outfitter/internal/domain/outfit"
	"github.com/yanqian/outfitter/internal/domain/wardrobe"
	"github.com/yanqian/outfitter/internal/domain/weather"
	"github.com/yanqian/outfitter/internal/infra/config"
	httpiface "github.com/yanqian/outfitter/internal/interface/http"
	"github.com/yanqian/outfitter/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideWeatherConfig,
		provideWeatherProvider,
		provideWeatherCache,
		provideWardrobeConfig,
		provideWardrobeRepository,
		provideObjectStorage,
		provideCalendarRepository,
		provideOutfitConfig,
		provideOutfitEngine,
		provideInventory,
		provideWeatherSource,
		provideAgenda,
		weather.NewService,
		wardrobe.NewService,
		calendar.NewService,
		outfit.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
