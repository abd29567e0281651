//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/cinematic-itinerary/internal/bootstrap"
	"github.com/yanqian/cinematic-itinerary/internal/domain/itinerary"
	"github.com/yanqian/cinematic-itinerary/internal/infra/config"
	httpiface "github.com/yanqian/cinematic-itinerary/internal/interface/http"
	"github.com/yanqian/cinematic-itinerary/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideItineraryConfig,
		provideWeatherSource,
		providePhotoSource,
		provideOutcomeCounter,
		provideHistoryRepository,
		provideTrendingStore,
		itinerary.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
