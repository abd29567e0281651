package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/cinematic-itinerary/internal/domain/itinerary"
	"github.com/yanqian/cinematic-itinerary/internal/infra/config"
	"github.com/yanqian/cinematic-itinerary/internal/infra/photos/unsplash"
	"github.com/yanqian/cinematic-itinerary/internal/infra/triprepo"
	"github.com/yanqian/cinematic-itinerary/internal/infra/tripstore"
	"github.com/yanqian/cinematic-itinerary/internal/infra/weather/openweather"
	"github.com/yanqian/cinematic-itinerary/pkg/metrics"
)

func provideItineraryConfig(cfg *config.Config) itinerary.Config {
	return itinerary.Config{
		TrendingLimit: cfg.Trending.Limit,
		HistoryLimit:  cfg.History.Limit,
	}
}

func provideWeatherSource(cfg *config.Config, logger *slog.Logger) itinerary.WeatherSource {
	if strings.TrimSpace(cfg.Weather.APIKey) == "" {
		logger.Warn("OPENWEATHER_API_KEY is missing, using mock weather")
		return itinerary.MockWeatherSource{}
	}
	return openweather.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.Weather.Timeout)
}

func providePhotoSource(cfg *config.Config, logger *slog.Logger) itinerary.PhotoSource {
	if strings.TrimSpace(cfg.Photos.AccessKey) == "" {
		logger.Warn("UNSPLASH_ACCESS_KEY is missing, using mock photos")
		return itinerary.MockPhotoSource{}
	}
	return unsplash.NewClient(cfg.Photos.AccessKey, cfg.Photos.BaseURL, cfg.Photos.PerPage, cfg.Photos.Timeout)
}

func provideOutcomeCounter() *metrics.OutcomeCounter {
	return metrics.NewOutcomeCounter()
}

func provideHistoryRepository(cfg *config.Config, logger *slog.Logger) (itinerary.HistoryRepository, func()) {
	fallback := triprepo.NewMemoryRepository(cfg.History.Capacity)
	noop := func() {}
	dsn := strings.TrimSpace(cfg.History.Postgres.DSN)
	if dsn == "" {
		logger.Info("history postgres dsn not set, using memory repository")
		return fallback, noop
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback, noop
	}
	if cfg.History.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.History.Postgres.MaxConns
	}
	if cfg.History.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.History.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback, noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback, noop
	}
	repo := triprepo.NewPostgresRepository(pool)
	if cfg.History.Postgres.Migrate {
		if err := repo.Migrate(ctx); err != nil {
			logger.Error("history migration failed, using memory repository", "error", err)
			pool.Close()
			return fallback, noop
		}
	}
	logger.Info("history postgres repository enabled")
	return repo, pool.Close
}

func provideTrendingStore(cfg *config.Config, logger *slog.Logger) (itinerary.TrendingStore, func()) {
	noop := func() {}
	if !cfg.Trending.Redis.Enabled {
		return tripstore.NewMemoryStore(), noop
	}
	opt, err := buildValkeyOptions(cfg.Trending.Redis.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return tripstore.NewMemoryStore(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return tripstore.NewMemoryStore(), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return tripstore.NewMemoryStore(), noop
	}
	logger.Info("trending valkey store enabled", "addr", cfg.Trending.Redis.Addr)
	return tripstore.NewValkeyStore(client, cfg.Trending.Redis.Prefix), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
